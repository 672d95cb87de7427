package identify

import (
	"fmt"
	"herbal/internal/config"
	"strings"
	"time"
)

// New instantiates the driver selected by IDENTIFY_DRIVER.
func New(cfg config.Config) (Identifier, error) {
	timeout := time.Duration(cfg.IdentifyTimeoutS) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	driver := strings.ToLower(strings.TrimSpace(cfg.IdentifyDriver))
	switch driver {
	case "", DriverStub:
		return NewStub(), nil
	case DriverPlantID:
		return NewPlantID(cfg.PlantIDAPIKey, cfg.PlantIDBaseURL, timeout)
	case DriverArk:
		return NewArk(cfg.ArkAPIKey, cfg.ArkModel, timeout)
	case DriverOpenAI:
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, timeout)
	default:
		return nil, fmt.Errorf("unsupported identify driver: %s", cfg.IdentifyDriver)
	}
}
