package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateResponse sends a generation request and returns the response text
	GenerateResponse(ctx context.Context, req *Request) (string, error)

	// IsAvailable reports whether the provider can currently serve requests
	IsAvailable(ctx context.Context) bool

	// Name returns the provider name (e.g., "openai", "anthropic")
	Name() string

	// Model returns the model being used
	Model() string
}

// Message represents a conversation message
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// Request represents a normalized LLM generation request
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}
