// Package identify guesses a plant species from a photograph.
package identify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	DriverStub    = "stub"
	DriverPlantID = "plantid"
	DriverArk     = "ark"
	DriverOpenAI  = "openai"
)

// ErrIdentificationFailed marks every failure of the identification call so
// callers can tell it apart from validation and storage errors.
var ErrIdentificationFailed = errors.New("identification failed")

// Image is a stored upload handed to a driver.
type Image struct {
	// Path is the storage key of the persisted upload.
	Path        string
	Data        []byte
	ContentType string
}

// Result is the best species guess.
type Result struct {
	ScientificName string
	CommonNames    []string
	Confidence     float64
	SimilarImages  []string
	// Raw is the provider payload, stored verbatim with the record.
	Raw json.RawMessage
}

// Identifier is implemented by every identification driver.
type Identifier interface {
	Identify(ctx context.Context, image Image) (*Result, error)
}

func failf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrIdentificationFailed, fmt.Sprintf(format, args...))
}

func failWrap(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIdentificationFailed, op, err)
}
