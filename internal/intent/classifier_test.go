package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("Parses Structured Response", func(t *testing.T) {
		provider := &mockProvider{response: `{
			"intent": "create-processor",
			"parameters": {"processor_name": "File Reader", "processor_type": "org.apache.nifi.processors.standard.GetFile"},
			"confidence": 0.92,
			"explanation": "user wants a new processor"
		}`}
		c := NewClassifier(provider, &mockLogger{})

		result, err := c.Classify(context.Background(), "create a GetFile processor named 'File Reader'")
		require.NoError(t, err)
		require.Equal(t, IntentCreateProcessor, result.Intent)
		require.Equal(t, "File Reader", result.Parameters.ProcessorName)
		require.Equal(t, 0.92, result.Confidence)
		require.Equal(t, DefaultProcessGroupID, result.Parameters.ProcessGroupID)
	})

	t.Run("Strips Markdown Fences", func(t *testing.T) {
		provider := &mockProvider{response: "```json\n{\"intent\": \"list-processors\", \"confidence\": 0.8, \"explanation\": \"listing\"}\n```"}
		c := NewClassifier(provider, &mockLogger{})

		result, err := c.Classify(context.Background(), "list processors")
		require.NoError(t, err)
		require.Equal(t, IntentListProcessors, result.Intent)
		require.Equal(t, 0.8, result.Confidence)
	})

	t.Run("Malformed JSON Degrades To Unknown", func(t *testing.T) {
		provider := &mockProvider{response: "I think you want to list processors."}
		c := NewClassifier(provider, &mockLogger{})

		result, err := c.Classify(context.Background(), "list processors")
		require.NoError(t, err)
		require.Equal(t, IntentUnknown, result.Intent)
		require.Equal(t, 0.0, result.Confidence)
		require.Contains(t, result.Explanation, explanationParseFailure)
	})

	t.Run("Unknown Intent Tag Degrades To Unknown", func(t *testing.T) {
		provider := &mockProvider{response: `{"intent": "make-coffee", "confidence": 0.99}`}
		c := NewClassifier(provider, &mockLogger{})

		result, err := c.Classify(context.Background(), "make coffee")
		require.NoError(t, err)
		require.Equal(t, IntentUnknown, result.Intent)
		require.Equal(t, 0.0, result.Confidence)
	})

	t.Run("Missing Confidence Defaults", func(t *testing.T) {
		provider := &mockProvider{response: `{"intent": "help", "explanation": "help request"}`}
		c := NewClassifier(provider, &mockLogger{})

		result, err := c.Classify(context.Background(), "help")
		require.NoError(t, err)
		require.Equal(t, IntentHelp, result.Intent)
		require.Equal(t, classifierDefaultConfidence, result.Confidence)
	})

	t.Run("Out Of Range Confidence Degrades To Unknown", func(t *testing.T) {
		provider := &mockProvider{response: `{"intent": "help", "confidence": 1.5}`}
		c := NewClassifier(provider, &mockLogger{})

		result, err := c.Classify(context.Background(), "help")
		require.NoError(t, err)
		require.Equal(t, IntentUnknown, result.Intent)
		require.Equal(t, 0.0, result.Confidence)
	})

	t.Run("Provider Error Propagates", func(t *testing.T) {
		provider := &mockProvider{err: errors.New("connection refused")}
		c := NewClassifier(provider, &mockLogger{})

		_, err := c.Classify(context.Background(), "list processors")
		require.Error(t, err)
	})
}
