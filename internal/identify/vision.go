package identify

import (
	"encoding/json"
	"strings"
)

// visionPrompt asks a multimodal chat model for a machine readable answer.
const visionPrompt = `You are a botanist. Identify the plant in the photo.
Answer with a single JSON object and nothing else:
{"scientific_name": "<binomial name>", "common_names": ["<name>", ...], "confidence": <number between 0 and 1>}
If the photo does not show a plant, use an empty scientific_name and confidence 0.`

type visionAnswer struct {
	ScientificName string   `json:"scientific_name"`
	CommonNames    []string `json:"common_names"`
	Confidence     float64  `json:"confidence"`
}

// parseVisionAnswer extracts the JSON object from a chat answer, tolerating
// markdown fences and surrounding prose.
func parseVisionAnswer(content string) (*Result, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, failf("empty model answer")
	}
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start < 0 || end <= start {
		return nil, failf("model answer is not JSON: %s", logSnippet(trimmed))
	}
	raw := trimmed[start : end+1]

	var answer visionAnswer
	if err := json.Unmarshal([]byte(raw), &answer); err != nil {
		return nil, failWrap("decode model answer", err)
	}
	name := strings.TrimSpace(answer.ScientificName)
	if name == "" {
		return nil, failf("model could not identify a plant")
	}

	confidence := answer.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	names := make([]string, 0, len(answer.CommonNames))
	for _, n := range answer.CommonNames {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return &Result{
		ScientificName: name,
		CommonNames:    names,
		Confidence:     confidence,
		Raw:            json.RawMessage(raw),
	}, nil
}
