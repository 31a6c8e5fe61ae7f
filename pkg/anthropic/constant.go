package anthropic

import "time"

const (
	// DefaultModel is the default Anthropic model
	DefaultModel = "claude-3-5-sonnet-20241022"

	// DefaultBaseURL is the default Anthropic API endpoint
	DefaultBaseURL = "https://api.anthropic.com"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// APIVersion is the required anthropic-version header value
	APIVersion = "2023-06-01"
)
