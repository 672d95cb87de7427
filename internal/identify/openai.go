package identify

import (
	"context"
	"errors"
	"herbal/internal/utils"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// OpenAI talks to any OpenAI compatible chat endpoint with vision support
// (OpenAI, DashScope compatible mode, OpenRouter).
type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey, baseURL, model string, timeout time.Duration) (*OpenAI, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openai api key is not configured")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("openai model is not configured")
	}
	cfg := openai.DefaultConfig(strings.TrimSpace(apiKey))
	if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
		cfg.BaseURL = strings.TrimRight(trimmed, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return &OpenAI{
		client: openai.NewClientWithConfig(cfg),
		model:  strings.TrimSpace(model),
	}, nil
}

func (o *OpenAI) Identify(ctx context.Context, image Image) (*Result, error) {
	if len(image.Data) == 0 {
		return nil, failf("empty image %q", image.Path)
	}
	logger := driverLogger(ctx, DriverOpenAI, o.model)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: visionPrompt,
					},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: utils.EncodeDataURL(image.ContentType, image.Data)},
					},
				},
			},
		},
		MaxTokens: 300,
	})
	if err != nil {
		logger.WithError(err).Error("openai chat completion failed")
		return nil, failWrap("openai chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return nil, failf("openai returned no choices")
	}

	answer := resp.Choices[0].Message.Content
	result, err := parseVisionAnswer(answer)
	if err != nil {
		logger.WithError(err).WithField("answer", logSnippet(answer)).Warn("openai answer rejected")
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"species":    result.ScientificName,
		"confidence": result.Confidence,
	}).Info("openai identification finished")
	return result, nil
}
