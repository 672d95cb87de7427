package db

import "time"

// Plant 表示一条植物目录记录。
//
// A plant is pending until IsApproved is set; ApprovedByID and ApprovedAt are
// always written together.
type Plant struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name           string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	ScientificName string `gorm:"column:scientific_name;type:varchar(100);index" json:"scientific_name"`
	Family         string `gorm:"column:family;type:varchar(100)" json:"family"`
	ImageKey       string `gorm:"column:image_filename;type:varchar(255)" json:"image_key"`

	AyurvedicName string `gorm:"column:ayurvedic_name;type:varchar(100)" json:"ayurvedic_name"`
	HindiName     string `gorm:"column:hindi_name;type:varchar(100)" json:"hindi_name"`
	SanskritName  string `gorm:"column:sanskrit_name;type:varchar(100)" json:"sanskrit_name"`

	// 阿育吠陀属性
	Rasa   string `gorm:"column:rasa;type:varchar(100)" json:"rasa"`
	Guna   string `gorm:"column:guna;type:varchar(100)" json:"guna"`
	Virya  string `gorm:"column:virya;type:varchar(50)" json:"virya"`
	Vipaka string `gorm:"column:vipaka;type:varchar(50)" json:"vipaka"`
	Dosha  string `gorm:"column:dosha;type:varchar(100)" json:"dosha"`

	Description            string `gorm:"column:description;type:text" json:"description"`
	Benefits               string `gorm:"column:benefits;type:text" json:"benefits"`
	Uses                   string `gorm:"column:uses;type:text" json:"uses"`
	MedicinalProperties    string `gorm:"column:medicinal_properties;type:text" json:"medicinal_properties"`
	ChemicalConstituents   string `gorm:"column:chemical_constituents;type:text" json:"chemical_constituents"`
	PharmacologicalActions string `gorm:"column:pharmacological_actions;type:text" json:"pharmacological_actions"`
	TherapeuticUses        string `gorm:"column:therapeutic_uses;type:text" json:"therapeutic_uses"`
	CulinaryUses           string `gorm:"column:culinary_uses;type:text" json:"culinary_uses"`
	GrowingConditions      string `gorm:"column:growing_conditions;type:text" json:"growing_conditions"`
	Precautions            string `gorm:"column:precautions;type:text" json:"precautions"`
	SideEffects            string `gorm:"column:side_effects;type:text" json:"side_effects"`
	Season                 string `gorm:"column:season;type:varchar(50)" json:"season"`
	WaterRequirements      string `gorm:"column:water_requirements;type:varchar(50)" json:"water_requirements"`
	SunlightRequirements   string `gorm:"column:sunlight_requirements;type:varchar(50)" json:"sunlight_requirements"`
	SoilType               string `gorm:"column:soil_type;type:varchar(100)" json:"soil_type"`
	Climate                string `gorm:"column:climate;type:varchar(100)" json:"climate"`
	PlantnetID             string `gorm:"column:plantnet_id;type:varchar(100)" json:"plantnet_id"`

	AuthorID uint  `gorm:"column:user_id;index;not null" json:"author_id"`
	Author   *User `gorm:"foreignKey:AuthorID" json:"-"`

	IsApproved      bool       `gorm:"column:is_approved;not null;default:false;index" json:"is_approved"`
	ApprovedByID    *uint      `gorm:"column:approved_by" json:"approved_by,omitempty"`
	Approver        *User      `gorm:"foreignKey:ApprovedByID" json:"-"`
	ApprovedAt      *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	RejectionReason *string    `gorm:"column:rejection_reason;type:text" json:"rejection_reason,omitempty"`

	Categories  []Category        `gorm:"many2many:plant_categories;foreignKey:ID;joinForeignKey:PlantID;references:ID;joinReferences:CategoryID" json:"categories"`
	CommonNames []PlantCommonName `gorm:"foreignKey:PlantID" json:"common_names"`
}

// TableName 指定表名
func (Plant) TableName() string {
	return "plants"
}

// VisibleTo reports whether a viewer may see the plant outside of listings:
// approved plants are public, pending ones only reach admins and the author.
func (p Plant) VisibleTo(viewerID uint, viewerIsAdmin bool) bool {
	if p.IsApproved || viewerIsAdmin {
		return true
	}
	return viewerID != 0 && viewerID == p.AuthorID
}

// PlantCommonName 植物的本地化俗名，按 Position 排序。
type PlantCommonName struct {
	ID       uint   `gorm:"primarykey" json:"-"`
	PlantID  uint   `gorm:"column:plant_id;index;not null" json:"-"`
	Position int    `gorm:"column:position;not null;default:0" json:"position"`
	Language string `gorm:"column:language;type:varchar(8)" json:"language,omitempty"`
	Name     string `gorm:"column:name;type:varchar(200);not null" json:"name"`
}

// TableName 指定表名
func (PlantCommonName) TableName() string {
	return "plant_common_names"
}
