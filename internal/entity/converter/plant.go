package converter

import (
	"herbal/internal/entity/db"
	"herbal/internal/entity/dto"
	"sort"
	"strings"
)

// URLFunc maps a storage key to a client facing URL.
type URLFunc func(key string) string

// PlantFromForm builds an unsaved plant from a submission form. Author,
// moderation state, categories and image are set by the caller.
func PlantFromForm(form *dto.PlantForm) *db.Plant {
	if form == nil {
		return nil
	}
	return &db.Plant{
		Name:                   strings.TrimSpace(form.Name),
		ScientificName:         strings.TrimSpace(form.ScientificName),
		Family:                 strings.TrimSpace(form.Family),
		AyurvedicName:          strings.TrimSpace(form.AyurvedicName),
		HindiName:              strings.TrimSpace(form.HindiName),
		SanskritName:           strings.TrimSpace(form.SanskritName),
		Rasa:                   form.Rasa,
		Guna:                   form.Guna,
		Virya:                  form.Virya,
		Vipaka:                 form.Vipaka,
		Dosha:                  form.Dosha,
		Description:            form.Description,
		Benefits:               form.Benefits,
		Uses:                   form.Uses,
		MedicinalProperties:    form.MedicinalProperties,
		ChemicalConstituents:   form.ChemicalConstituents,
		PharmacologicalActions: form.PharmacologicalActions,
		TherapeuticUses:        form.TherapeuticUses,
		CulinaryUses:           form.CulinaryUses,
		GrowingConditions:      form.GrowingConditions,
		Precautions:            form.Precautions,
		SideEffects:            form.SideEffects,
		Season:                 form.Season,
		WaterRequirements:      form.WaterRequirements,
		SunlightRequirements:   form.SunlightRequirements,
		SoilType:               form.SoilType,
		Climate:                form.Climate,
		PlantnetID:             strings.TrimSpace(form.PlantnetID),
		CommonNames:            ParseCommonNames(form.CommonNames),
	}
}

// ParseCommonNames turns raw form values into an ordered name list. A value
// may hold several comma separated names, each optionally prefixed with a
// two or three letter language code ("hi:Tulsi"). Blank entries are dropped.
func ParseCommonNames(values []string) []db.PlantCommonName {
	var names []db.PlantCommonName
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			lang, name := splitLanguagePrefix(part)
			if name == "" {
				continue
			}
			names = append(names, db.PlantCommonName{
				Position: len(names),
				Language: lang,
				Name:     name,
			})
		}
	}
	return names
}

func splitLanguagePrefix(value string) (string, string) {
	idx := strings.Index(value, ":")
	if idx < 2 || idx > 3 {
		return "", value
	}
	code := value[:idx]
	for _, r := range code {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return "", value
		}
	}
	return strings.ToLower(code), strings.TrimSpace(value[idx+1:])
}

// CommonNamesToDTO returns the names sorted by position.
func CommonNamesToDTO(names []db.PlantCommonName) []dto.LocalizedName {
	sorted := make([]db.PlantCommonName, len(names))
	copy(sorted, names)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	out := make([]dto.LocalizedName, len(sorted))
	for i, n := range sorted {
		out[i] = dto.LocalizedName{Language: n.Language, Name: n.Name}
	}
	return out
}

// PlantToSummary converts a db.Plant to dto.PlantSummary.
func PlantToSummary(p *db.Plant, urlFor URLFunc) dto.PlantSummary {
	if p == nil {
		return dto.PlantSummary{}
	}
	categories := make([]string, len(p.Categories))
	for i, c := range p.Categories {
		categories[i] = c.Name
	}
	summary := dto.PlantSummary{
		ID:             p.ID,
		Name:           p.Name,
		ScientificName: p.ScientificName,
		HindiName:      p.HindiName,
		AyurvedicName:  p.AyurvedicName,
		CommonNames:    CommonNamesToDTO(p.CommonNames),
		Categories:     categories,
		IsApproved:     p.IsApproved,
		CreatedAt:      p.CreatedAt,
	}
	if p.ImageKey != "" && urlFor != nil {
		summary.ImageURL = urlFor(p.ImageKey)
	}
	return summary
}

// PlantsToSummaries converts a slice of db.Plant to dto.PlantSummary.
func PlantsToSummaries(plants []db.Plant, urlFor URLFunc) []dto.PlantSummary {
	summaries := make([]dto.PlantSummary, len(plants))
	for i := range plants {
		summaries[i] = PlantToSummary(&plants[i], urlFor)
	}
	return summaries
}

// PlantToDetail converts a db.Plant to dto.PlantDetail.
func PlantToDetail(p *db.Plant, urlFor URLFunc) dto.PlantDetail {
	if p == nil {
		return dto.PlantDetail{}
	}
	return dto.PlantDetail{
		PlantSummary:           PlantToSummary(p, urlFor),
		Family:                 p.Family,
		SanskritName:           p.SanskritName,
		Rasa:                   p.Rasa,
		Guna:                   p.Guna,
		Virya:                  p.Virya,
		Vipaka:                 p.Vipaka,
		Dosha:                  p.Dosha,
		Description:            p.Description,
		Benefits:               p.Benefits,
		Uses:                   p.Uses,
		MedicinalProperties:    p.MedicinalProperties,
		ChemicalConstituents:   p.ChemicalConstituents,
		PharmacologicalActions: p.PharmacologicalActions,
		TherapeuticUses:        p.TherapeuticUses,
		CulinaryUses:           p.CulinaryUses,
		GrowingConditions:      p.GrowingConditions,
		Precautions:            p.Precautions,
		SideEffects:            p.SideEffects,
		Season:                 p.Season,
		WaterRequirements:      p.WaterRequirements,
		SunlightRequirements:   p.SunlightRequirements,
		SoilType:               p.SoilType,
		Climate:                p.Climate,
		PlantnetID:             p.PlantnetID,
		Author:                 publicUser(p.Author),
		ApprovedBy:             publicUser(p.Approver),
		ApprovedAt:             p.ApprovedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

// CategoryToDTO converts a db.Category to dto.Category.
func CategoryToDTO(c *db.Category) dto.Category {
	if c == nil {
		return dto.Category{}
	}
	return dto.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		PlantCount:  c.PlantCount,
		CreatedAt:   c.CreatedAt,
	}
}

// CategoriesToDTO converts a slice of db.Category to dto.Category.
func CategoriesToDTO(categories []db.Category) []dto.Category {
	out := make([]dto.Category, len(categories))
	for i := range categories {
		out[i] = CategoryToDTO(&categories[i])
	}
	return out
}
