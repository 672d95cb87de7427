package identify

import (
	"context"
	"encoding/json"
)

// Stub always answers with the same guess. It is the default driver and the
// one used in tests.
type Stub struct {
	payload []byte
}

func NewStub() *Stub {
	suggestion := plantIDSuggestion{
		PlantName:   "Ocimum tenuiflorum",
		Probability: 0.85,
	}
	suggestion.PlantDetails.CommonNames = []string{"Holy Basil", "Tulsi"}

	payload, _ := json.Marshal(plantIDResponse{Suggestions: []plantIDSuggestion{suggestion}})
	return &Stub{payload: payload}
}

func (s *Stub) Identify(ctx context.Context, image Image) (*Result, error) {
	driverLogger(ctx, DriverStub, "").WithField("image", image.Path).Debug("stub identification")
	return parsePlantIDResponse(s.payload)
}
