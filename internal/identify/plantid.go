package identify

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultPlantIDBaseURL = "https://api.plant.id/v2"

var defaultOrgans = []string{"leaf", "flower", "fruit", "bark"}

// PlantID calls the Plant.id v2 identify endpoint.
type PlantID struct {
	apiKey     string
	baseURL    string
	organs     []string
	httpClient *http.Client
}

type plantIDRequest struct {
	Images        []string `json:"images"`
	Modifiers     []string `json:"modifiers"`
	PlantLanguage string   `json:"plant_language"`
	PlantDetails  []string `json:"plant_details"`
	Organs        []string `json:"organs"`
}

type plantIDResponse struct {
	Suggestions []plantIDSuggestion `json:"suggestions"`
}

type plantIDSuggestion struct {
	PlantName    string  `json:"plant_name"`
	Probability  float64 `json:"probability"`
	Confirmed    bool    `json:"confirmed,omitempty"`
	PlantDetails struct {
		CommonNames []string `json:"common_names"`
	} `json:"plant_details"`
	SimilarImages []struct {
		URL string `json:"url"`
	} `json:"similar_images,omitempty"`
}

func NewPlantID(apiKey, baseURL string, timeout time.Duration) (*PlantID, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("plant.id api key is not configured")
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultPlantIDBaseURL
	}
	return &PlantID{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    baseURL,
		organs:     defaultOrgans,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (p *PlantID) Identify(ctx context.Context, image Image) (*Result, error) {
	if len(image.Data) == 0 {
		return nil, failf("empty image %q", image.Path)
	}
	logger := driverLogger(ctx, DriverPlantID, "")

	reqBody := plantIDRequest{
		Images:        []string{base64.StdEncoding.EncodeToString(image.Data)},
		Modifiers:     []string{"crops_fast", "similar_images"},
		PlantLanguage: "en",
		PlantDetails:  []string{"common_names", "url", "name_authority", "wiki_description", "taxonomy", "synonyms"},
		Organs:        p.organs,
	}
	bs, err := json.Marshal(reqBody)
	if err != nil {
		return nil, failWrap("encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/identify", bytes.NewReader(bs))
	if err != nil {
		return nil, failWrap("create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Error("plant.id request failed")
		return nil, failWrap("request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, failWrap("read response", err)
	}
	if resp.StatusCode != http.StatusOK {
		logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   logSnippet(string(body)),
		}).Error("plant.id returned an error")
		return nil, failf("plant.id http %d: %s", resp.StatusCode, logSnippet(string(body)))
	}

	result, err := parsePlantIDResponse(body)
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"species":    result.ScientificName,
		"confidence": result.Confidence,
	}).Info("plant.id identification finished")
	return result, nil
}

// parsePlantIDResponse keeps the first suggestion.
func parsePlantIDResponse(body []byte) (*Result, error) {
	var parsed plantIDResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, failWrap("decode response", err)
	}
	if len(parsed.Suggestions) == 0 {
		return nil, failf("no suggestions in response")
	}

	best := parsed.Suggestions[0]
	name := strings.TrimSpace(best.PlantName)
	if name == "" {
		name = "Unknown"
	}
	result := &Result{
		ScientificName: name,
		CommonNames:    append([]string{}, best.PlantDetails.CommonNames...),
		Confidence:     best.Probability,
		Raw:            json.RawMessage(append([]byte{}, body...)),
	}
	for _, img := range best.SimilarImages {
		if url := strings.TrimSpace(img.URL); url != "" {
			result.SimilarImages = append(result.SimilarImages, url)
		}
	}
	return result, nil
}
