package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"go.uber.org/zap"

	"mindspace/internal/model"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o-mini"
	// DefaultBaseURL is the OpenAI API endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"
	// DefaultTimeout bounds a single completion call.
	DefaultTimeout = 30 * time.Second
)

// OpenAIProvider implements Provider on the OpenAI chat completions API.
type OpenAIProvider struct {
	client openai.Client
	model  string
	logger *zap.Logger
}

// NewOpenAIProvider creates a provider. Empty model or baseURL fall back
// to the defaults.
func NewOpenAIProvider(apiKey, baseURL, model string, logger *zap.Logger) *OpenAIProvider {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithHTTPClient(&http.Client{Timeout: DefaultTimeout}),
	)

	return &OpenAIProvider{
		client: client,
		model:  model,
		logger: logger,
	}
}

// Chat sends the persona prompt, prior turns, and the new message.
func (p *OpenAIProvider) Chat(ctx context.Context, system string, history []model.ChatMessage, message string) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	if system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	for _, msg := range history {
		switch msg.Role {
		case model.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}
	messages = append(messages, openai.UserMessage(message))

	req := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(p.model),
		Messages: messages,
	}

	start := time.Now()
	resp, err := p.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}

	if p.logger != nil {
		p.logger.Debug("chat completion",
			zap.String("model", p.model),
			zap.Int("message_count", len(messages)),
			zap.Int64("latency_ms", time.Since(start).Milliseconds()),
		)
	}

	return resp.Choices[0].Message.Content, nil
}
