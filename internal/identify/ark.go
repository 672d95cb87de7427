package identify

import (
	"context"
	"errors"
	"herbal/internal/utils"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/volcengine/volcengine-go-sdk/service/arkruntime"
	volcModel "github.com/volcengine/volcengine-go-sdk/service/arkruntime/model"
)

// Ark asks a Volcengine Ark vision model to name the plant.
type Ark struct {
	client  *arkruntime.Client
	model   string
	timeout time.Duration
}

func NewArk(apiKey, model string, timeout time.Duration) (*Ark, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ark api key is not configured")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("ark model is not configured")
	}
	return &Ark{
		client:  arkruntime.NewClientWithApiKey(strings.TrimSpace(apiKey)),
		model:   strings.TrimSpace(model),
		timeout: timeout,
	}, nil
}

func (a *Ark) Identify(ctx context.Context, image Image) (*Result, error) {
	if len(image.Data) == 0 {
		return nil, failf("empty image %q", image.Path)
	}
	logger := driverLogger(ctx, DriverArk, a.model)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, volcModel.CreateChatCompletionRequest{
		Model: a.model,
		Messages: []*volcModel.ChatCompletionMessage{
			{
				Role: volcModel.ChatMessageRoleUser,
				Content: &volcModel.ChatCompletionMessageContent{
					ListValue: []*volcModel.ChatCompletionMessageContentPart{
						{
							Type: volcModel.ChatCompletionMessageContentPartTypeText,
							Text: visionPrompt,
						},
						{
							Type: volcModel.ChatCompletionMessageContentPartTypeImageURL,
							ImageURL: &volcModel.ChatMessageImageURL{
								URL: utils.EncodeDataURL(image.ContentType, image.Data),
							},
						},
					},
				},
			},
		},
	})
	if err != nil {
		logger.WithError(err).Error("ark chat completion failed")
		return nil, failWrap("ark chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return nil, failf("ark returned no choices")
	}
	content := resp.Choices[0].Message.Content
	if content == nil || content.StringValue == nil {
		return nil, failf("ark returned an empty message")
	}

	result, err := parseVisionAnswer(*content.StringValue)
	if err != nil {
		logger.WithError(err).WithField("answer", logSnippet(*content.StringValue)).Warn("ark answer rejected")
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"species":    result.ScientificName,
		"confidence": result.Confidence,
	}).Info("ark identification finished")
	return result, nil
}
