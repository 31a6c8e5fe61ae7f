package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("High Confidence Classifier Result Accepted", func(t *testing.T) {
		classified := ProcessedIntent{
			Intent:      IntentCreateProcessor,
			Parameters:  NewParameters(),
			Confidence:  0.95,
			RawQuery:    "create a GetFile processor",
			Explanation: "user wants a new processor",
		}
		r := New(&mockLogger{}, &mockClassifier{result: classified})

		result := r.Resolve(ctx, "create a GetFile processor")
		require.Equal(t, classified, result)
	})

	t.Run("Threshold Is Strict", func(t *testing.T) {
		classified := ProcessedIntent{
			Intent:     IntentHelp,
			Parameters: NewParameters(),
			Confidence: ConfidenceThreshold,
			RawQuery:   "list processors",
		}
		r := New(&mockLogger{}, &mockClassifier{result: classified})

		// Exactly 0.7 is not accepted; the pattern path decides.
		result := r.Resolve(ctx, "list processors")
		require.Equal(t, IntentListProcessors, result.Intent)
	})

	t.Run("Low Confidence Falls Back Bit Identical", func(t *testing.T) {
		classified := ProcessedIntent{
			Intent:     IntentGetStatus,
			Parameters: NewParameters(),
			Confidence: 0.6,
			RawQuery:   "search for kafka processors",
		}
		withClassifier := New(&mockLogger{}, &mockClassifier{result: classified})
		withoutClassifier := New(&mockLogger{}, nil)

		query := "search for kafka processors"
		require.Equal(t, withoutClassifier.Resolve(ctx, query), withClassifier.Resolve(ctx, query))
	})

	t.Run("Classifier Failure Falls Back", func(t *testing.T) {
		r := New(&mockLogger{}, &mockClassifier{err: errors.New("timeout")})

		result := r.Resolve(ctx, "list all process groups")
		require.Equal(t, IntentListProcessGroups, result.Intent)
		require.LessOrEqual(t, result.Confidence, patternConfidenceCap)
	})

	t.Run("Nil Classifier Uses Patterns Alone", func(t *testing.T) {
		r := New(&mockLogger{}, nil)

		result := r.Resolve(ctx, "what's the status of my flow?")
		require.NotEqual(t, IntentUnknown, result.Intent)
		require.GreaterOrEqual(t, result.Confidence, 0.0)
	})

	t.Run("Unresolvable Query Is Unknown With Zero Confidence", func(t *testing.T) {
		r := New(&mockLogger{}, &mockClassifier{result: ProcessedIntent{
			Intent:     IntentUnknown,
			Parameters: NewParameters(),
			Confidence: 0.0,
			RawQuery:   "qwertyuiop",
		}})

		result := r.Resolve(ctx, "qwertyuiop")
		require.Equal(t, IntentUnknown, result.Intent)
		require.Equal(t, 0.0, result.Confidence)
		require.Equal(t, ExplanationNoPatternMatch, result.Explanation)
	})
}
