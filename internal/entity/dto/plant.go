package dto

import "time"

// PlantQuery drives plant listing and search. Only Query and CategoryID come
// from the request; the remaining fields are set by the caller.
type PlantQuery struct {
	Query      string `json:"q" form:"q" query:"q"`
	CategoryID uint   `json:"category" form:"category" query:"category"`

	IncludePending bool `json:"-" form:"-" query:"-"`
	PendingOnly    bool `json:"-" form:"-" query:"-"`
	AuthorID       uint `json:"-" form:"-" query:"-"`
	NewestFirst    bool `json:"-" form:"-" query:"-"`
	Limit          int  `json:"-" form:"-" query:"-"`
}

// PlantForm is the multipart submission payload. Every descriptive field is
// optional free text.
type PlantForm struct {
	Name           string `form:"name" binding:"required,max=100"`
	ScientificName string `form:"scientific_name" binding:"max=100"`
	Family         string `form:"family" binding:"max=100"`
	AyurvedicName  string `form:"ayurvedic_name" binding:"max=100"`
	HindiName      string `form:"hindi_name" binding:"max=100"`
	SanskritName   string `form:"sanskrit_name" binding:"max=100"`

	Rasa   string `form:"rasa" binding:"max=100"`
	Guna   string `form:"guna" binding:"max=100"`
	Virya  string `form:"virya" binding:"max=50"`
	Vipaka string `form:"vipaka" binding:"max=50"`
	Dosha  string `form:"dosha" binding:"max=100"`

	Description            string `form:"description"`
	Benefits               string `form:"benefits"`
	Uses                   string `form:"uses"`
	MedicinalProperties    string `form:"medicinal_properties"`
	ChemicalConstituents   string `form:"chemical_constituents"`
	PharmacologicalActions string `form:"pharmacological_actions"`
	TherapeuticUses        string `form:"therapeutic_uses"`
	CulinaryUses           string `form:"culinary_uses"`
	GrowingConditions      string `form:"growing_conditions"`
	Precautions            string `form:"precautions"`
	SideEffects            string `form:"side_effects"`

	Season               string `form:"season" binding:"max=50"`
	WaterRequirements    string `form:"water_requirements" binding:"max=50"`
	SunlightRequirements string `form:"sunlight_requirements" binding:"max=50"`
	SoilType             string `form:"soil_type" binding:"max=100"`
	Climate              string `form:"climate" binding:"max=100"`
	PlantnetID           string `form:"plantnet_id" binding:"max=100"`

	// Each entry is "name" or "lang:name"; entries may also be comma separated.
	CommonNames []string `form:"common_names"`
	CategoryIDs []uint   `form:"categories"`
}

// LocalizedName is one entry of a plant's ordered common name list.
type LocalizedName struct {
	Language string `json:"language,omitempty"`
	Name     string `json:"name"`
}

// PlantSummary is the listing representation of a plant.
type PlantSummary struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	ScientificName string          `json:"scientific_name"`
	HindiName      string          `json:"hindi_name"`
	AyurvedicName  string          `json:"ayurvedic_name"`
	ImageURL       string          `json:"image_url,omitempty"`
	CommonNames    []LocalizedName `json:"common_names"`
	Categories     []string        `json:"categories"`
	IsApproved     bool            `json:"is_approved"`
	CreatedAt      time.Time       `json:"created_at"`
}

// PlantDetail is the full representation of a plant.
type PlantDetail struct {
	PlantSummary

	Family       string `json:"family"`
	SanskritName string `json:"sanskrit_name"`

	Rasa   string `json:"rasa"`
	Guna   string `json:"guna"`
	Virya  string `json:"virya"`
	Vipaka string `json:"vipaka"`
	Dosha  string `json:"dosha"`

	Description            string `json:"description"`
	Benefits               string `json:"benefits"`
	Uses                   string `json:"uses"`
	MedicinalProperties    string `json:"medicinal_properties"`
	ChemicalConstituents   string `json:"chemical_constituents"`
	PharmacologicalActions string `json:"pharmacological_actions"`
	TherapeuticUses        string `json:"therapeutic_uses"`
	CulinaryUses           string `json:"culinary_uses"`
	GrowingConditions      string `json:"growing_conditions"`
	Precautions            string `json:"precautions"`
	SideEffects            string `json:"side_effects"`

	Season               string `json:"season"`
	WaterRequirements    string `json:"water_requirements"`
	SunlightRequirements string `json:"sunlight_requirements"`
	SoilType             string `json:"soil_type"`
	Climate              string `json:"climate"`
	PlantnetID           string `json:"plantnet_id,omitempty"`

	Author     *UserSummary `json:"author,omitempty"`
	ApprovedBy *UserSummary `json:"approved_by,omitempty"`
	ApprovedAt *time.Time   `json:"approved_at,omitempty"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// PlantListResponse is the response for listing plants.
type PlantListResponse struct {
	Plants []PlantSummary `json:"plants"`
	Total  int            `json:"total"`
}

// PlantDetailResponse is the response for a single plant.
type PlantDetailResponse struct {
	Plant PlantDetail `json:"plant"`
}

// PlantSubmitResponse reports the created plant and its moderation state.
type PlantSubmitResponse struct {
	Plant   PlantDetail `json:"plant"`
	Pending bool        `json:"pending"`
	Message string      `json:"message"`
}

// ModerationResponse reports the outcome of an approval or rejection.
type ModerationResponse struct {
	Plant   *PlantDetail `json:"plant,omitempty"`
	Message string       `json:"message"`
}

// RejectRequest carries the optional rejection reason.
type RejectRequest struct {
	Reason string `json:"reason" form:"reason"`
}

// Category is the DTO representation of a category.
type Category struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PlantCount  int64     `json:"plant_count"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// CategoryListResponse is the response for listing categories.
type CategoryListResponse struct {
	Categories []Category `json:"categories"`
}

// CategoryPlantsResponse lists the visible plants of one category.
type CategoryPlantsResponse struct {
	Category Category       `json:"category"`
	Plants   []PlantSummary `json:"plants"`
}

// AdminDashboard aggregates moderation statistics.
type AdminDashboard struct {
	TotalPlants     int64          `json:"total_plants"`
	PendingApproval int64          `json:"pending_approval"`
	TotalUsers      int64          `json:"total_users"`
	TotalCategories int64          `json:"total_categories"`
	RecentPlants    []PlantSummary `json:"recent_plants"`
	PendingPlants   []PlantSummary `json:"pending_plants"`
}
