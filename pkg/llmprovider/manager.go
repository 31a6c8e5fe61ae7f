package llmprovider

import (
	"context"
	"fmt"
	"time"

	"nifi-nlp-gateway/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic.
// It implements Provider itself so callers can treat the whole chain
// as a single classifier collaborator.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Ensure Manager implements Provider interface
var _ Provider = (*Manager)(nil)

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateResponse iterates through providers in priority order with fallback logic
func (m *Manager) GenerateResponse(ctx context.Context, req *Request) (string, error) {
	if len(m.providers) == 0 {
		return "", ErrNoProvidersConfigured
	}

	// Global timeout covers the entire fallback chain
	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(m.providers), ctx.Err())
		default:
		}

		text, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logger.Debugf(ctx, "LLM generation successful via %s (%s)", provider.Name(), provider.Model())
			return text, nil
		}

		m.logger.Warnf(ctx, "LLM generation failed via %s (%s): %v", provider.Name(), provider.Model(), err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return "", fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry implements retry mechanism with backoff per provider
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (string, error) {
	var lastErr error

	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, err := provider.GenerateResponse(ctx, req)
		if err == nil {
			return text, nil
		}

		lastErr = err
	}

	return "", lastErr
}

// IsAvailable reports whether any provider in the chain is available
func (m *Manager) IsAvailable(ctx context.Context) bool {
	for _, provider := range m.providers {
		if provider.IsAvailable(ctx) {
			return true
		}
	}
	return false
}

// Name returns the provider name
func (m *Manager) Name() string {
	return "manager"
}

// Model returns the model of the highest-priority provider
func (m *Manager) Model() string {
	if len(m.providers) == 0 {
		return ""
	}
	return m.providers[0].Model()
}
