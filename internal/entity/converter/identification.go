package converter

import (
	"herbal/internal/entity/db"
	"herbal/internal/entity/dto"
)

// IdentificationToDTO converts a record. The suggested plant is included only
// when includeMatch is set, so pending plants do not leak to other users.
func IdentificationToDTO(r *db.PlantIdentification, urlFor URLFunc, includeMatch bool) dto.Identification {
	if r == nil {
		return dto.Identification{}
	}
	out := dto.Identification{
		ID:                r.ID,
		IdentifiedSpecies: r.IdentifiedSpecies,
		CommonNames:       r.CommonNames.ToSlice(),
		Confidence:        r.Confidence,
		UserNotes:         r.UserNotes,
		CreatedAt:         r.CreatedAt,
	}
	if urlFor != nil {
		out.ImageURL = urlFor(r.ImageKey)
	}
	if includeMatch && r.SuggestedPlant != nil {
		summary := PlantToSummary(r.SuggestedPlant, urlFor)
		out.SuggestedPlant = &summary
	}
	return out
}
