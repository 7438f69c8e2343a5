package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/incidentdesk/backend/internal/models"
)

const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

// AnthropicAdapter asks a Claude model for the analysis via the Messages API.
type AnthropicAdapter struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int64
}

func (a AnthropicAdapter) AnalyzeTicket(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error) {
	if strings.TrimSpace(a.APIKey) == "" {
		return models.AnalysisResult{}, ErrNoRemote
	}
	model := a.Model
	if strings.TrimSpace(model) == "" {
		model = defaultAnthropicModel
	}
	maxTokens := a.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1000
	}

	opts := []option.RequestOption{
		option.WithAPIKey(a.APIKey),
		option.WithMaxRetries(0),
	}
	if strings.TrimSpace(a.BaseURL) != "" {
		opts = append(opts, option.WithBaseURL(a.BaseURL))
	}
	client := anthropic.NewClient(opts...)

	message, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(0.3),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(BuildPrompt(req))),
		},
	})
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("anthropic request failed: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return ParseReply(block.Text)
		}
	}
	return models.AnalysisResult{}, fmt.Errorf("%w: no text content", ErrMalformedReply)
}
