package llmprovider

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"nifi-nlp-gateway/pkg/anthropic"
)

// OpenAIAdapter adapts the go-openai client to the Provider interface.
// Any OpenAI-compatible endpoint works by overriding the base URL.
type OpenAIAdapter struct {
	client *openai.Client
	model  string
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(apiKey, baseURL, model string) *OpenAIAdapter {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIAdapter{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// GenerateResponse implements Provider interface
func (a *OpenAIAdapter) GenerateResponse(ctx context.Context, req *Request) (string, error) {
	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, msg := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", &ProviderError{Provider: "openai", Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: "openai", Err: ErrEmptyResponse}
	}

	return resp.Choices[0].Message.Content, nil
}

// IsAvailable probes the API with a model listing call
func (a *OpenAIAdapter) IsAvailable(ctx context.Context) bool {
	_, err := a.client.ListModels(ctx)
	return err == nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}

// AnthropicAdapter adapts pkg/anthropic to the Provider interface
type AnthropicAdapter struct {
	client anthropic.IAnthropic
}

// NewAnthropicAdapter creates a new Anthropic adapter
func NewAnthropicAdapter(client anthropic.IAnthropic) *AnthropicAdapter {
	return &AnthropicAdapter{client: client}
}

// GenerateResponse implements Provider interface
func (a *AnthropicAdapter) GenerateResponse(ctx context.Context, req *Request) (string, error) {
	messages := make([]anthropic.Message, len(req.Messages))
	for i, msg := range req.Messages {
		messages[i] = anthropic.Message{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	resp, err := a.client.GenerateContent(ctx, &anthropic.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", &ProviderError{Provider: "anthropic", Err: err}
	}

	if resp.Content == "" {
		return "", &ProviderError{Provider: "anthropic", Err: ErrEmptyResponse}
	}

	return resp.Content, nil
}

// IsAvailable probes the API with a minimal one-token request
func (a *AnthropicAdapter) IsAvailable(ctx context.Context) bool {
	_, err := a.client.GenerateContent(ctx, &anthropic.Request{
		Messages:  []anthropic.Message{{Role: "user", Content: "test"}},
		MaxTokens: 1,
	})
	return err == nil
}

// Name returns the provider name
func (a *AnthropicAdapter) Name() string {
	return "anthropic"
}

// Model returns the model name
func (a *AnthropicAdapter) Model() string {
	return a.client.Model()
}
