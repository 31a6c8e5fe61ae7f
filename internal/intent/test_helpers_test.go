package intent

import (
	"context"

	"nifi-nlp-gateway/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockProvider is a canned llmprovider.Provider for classifier tests.
type mockProvider struct {
	response string
	err      error
	calls    int
}

func (m *mockProvider) GenerateResponse(ctx context.Context, req *llmprovider.Request) (string, error) {
	m.calls++
	return m.response, m.err
}

func (m *mockProvider) IsAvailable(ctx context.Context) bool { return m.err == nil }
func (m *mockProvider) Name() string                         { return "mock" }
func (m *mockProvider) Model() string                        { return "mock-model" }

// mockClassifier is a canned Classifier for resolver tests.
type mockClassifier struct {
	result ProcessedIntent
	err    error
}

func (m *mockClassifier) Classify(ctx context.Context, query string) (ProcessedIntent, error) {
	return m.result, m.err
}
