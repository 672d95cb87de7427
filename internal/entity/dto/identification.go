package dto

import "time"

// IdentificationResult is the parsed species guess.
type IdentificationResult struct {
	ScientificName string   `json:"scientific_name"`
	CommonNames    []string `json:"common_names"`
	Confidence     float64  `json:"confidence"`
	SimilarImages  []string `json:"similar_images,omitempty"`
}

// Identification is the response representation of an identification record.
type Identification struct {
	ID                uint          `json:"id"`
	ImageURL          string        `json:"image_url"`
	IdentifiedSpecies string        `json:"identified_species"`
	CommonNames       []string      `json:"common_names"`
	Confidence        float64       `json:"confidence"`
	UserNotes         string        `json:"user_notes,omitempty"`
	SuggestedPlant    *PlantSummary `json:"suggested_plant,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
}

// IdentifyResponse is returned by the identification endpoint.
type IdentifyResponse struct {
	Result         IdentificationResult `json:"result"`
	Identification Identification       `json:"identification"`
	MatchFound     bool                 `json:"match_found"`
	Message        string               `json:"message"`
}

// IdentificationListResponse lists identification records.
type IdentificationListResponse struct {
	Identifications []Identification `json:"identifications"`
}
