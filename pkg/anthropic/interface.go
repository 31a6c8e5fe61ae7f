package anthropic

import "context"

// IAnthropic defines the interface for the Anthropic messages API client.
// Implementations are safe for concurrent use.
type IAnthropic interface {
	// GenerateContent sends a generation request to the messages API
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Anthropic client with the given configuration
func New(cfg Config) (IAnthropic, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newAnthropicImpl(cfg), nil
}
