package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"nifi-nlp-gateway/internal/dispatch"
	"nifi-nlp-gateway/internal/intent"
	"nifi-nlp-gateway/internal/query"
	"nifi-nlp-gateway/internal/session"
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

type fakeResolver struct {
	result intent.ProcessedIntent
}

func (f *fakeResolver) Resolve(ctx context.Context, q string) intent.ProcessedIntent {
	result := f.result
	result.RawQuery = q
	return result
}

type fakeDispatcher struct {
	result dispatch.Result
	calls  int
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, processed intent.ProcessedIntent) dispatch.Result {
	f.calls++
	return f.result
}

func TestProcess(t *testing.T) {
	ctx := context.Background()

	newUC := func(r *fakeResolver, d *fakeDispatcher) (query.UseCase, session.Store) {
		store := session.New(session.Config{})
		return New(&mockLogger{}, r, d, store), store
	}

	t.Run("Empty Query Error", func(t *testing.T) {
		uc, _ := newUC(&fakeResolver{}, &fakeDispatcher{})
		_, err := uc.Process(ctx, query.ProcessInput{Query: "   "})
		require.True(t, errors.Is(err, query.ErrEmptyQuery))
	})

	t.Run("Full Pipeline", func(t *testing.T) {
		resolver := &fakeResolver{result: intent.ProcessedIntent{
			Intent:     intent.IntentListProcessors,
			Parameters: intent.NewParameters(),
			Confidence: 0.8,
		}}
		dispatcher := &fakeDispatcher{result: dispatch.Result{
			Success: true,
			Message: "Found 2 processor(s)",
			Data:    map[string]interface{}{"count": 2},
		}}
		uc, _ := newUC(resolver, dispatcher)

		out, err := uc.Process(ctx, query.ProcessInput{Query: "list processors", SessionID: "s1"})
		require.NoError(t, err)
		require.True(t, out.Success)
		require.Equal(t, "Found 2 processor(s)", out.Message)
		require.Equal(t, intent.IntentListProcessors, out.Intent)
		require.Equal(t, 0.8, out.Confidence)
		require.Equal(t, "s1", out.SessionID)
		require.Equal(t, 1, dispatcher.calls)
	})

	t.Run("Session ID Issued When Absent", func(t *testing.T) {
		uc, store := newUC(
			&fakeResolver{result: intent.ProcessedIntent{Intent: intent.IntentHelp, Confidence: 0.3}},
			&fakeDispatcher{result: dispatch.Result{Success: true, Message: "ok"}},
		)

		out, err := uc.Process(ctx, query.ProcessInput{Query: "help"})
		require.NoError(t, err)
		require.NotEmpty(t, out.SessionID)

		record, ok := store.Get(ctx, out.SessionID)
		require.True(t, ok)
		require.Len(t, record.Entries, 1)
		require.Equal(t, "help", record.Entries[0].RawQuery)
	})

	t.Run("History Accumulates Per Session", func(t *testing.T) {
		uc, store := newUC(
			&fakeResolver{result: intent.ProcessedIntent{Intent: intent.IntentGetStatus, Confidence: 0.3}},
			&fakeDispatcher{result: dispatch.Result{Success: true, Message: "ok"}},
		)

		for i := 0; i < 3; i++ {
			_, err := uc.Process(ctx, query.ProcessInput{Query: "status", SessionID: "s1"})
			require.NoError(t, err)
		}

		record, ok := store.Get(ctx, "s1")
		require.True(t, ok)
		require.Len(t, record.Entries, 3)
	})
}

func TestIntrospect(t *testing.T) {
	ctx := context.Background()
	store := session.New(session.Config{})
	uc := New(&mockLogger{}, &fakeResolver{}, &fakeDispatcher{}, store)

	t.Run("Intents Catalog", func(t *testing.T) {
		out := uc.Intents(ctx)
		require.Equal(t, len(out.Intents), out.Count)
		require.NotEmpty(t, out.Intents)

		tags := map[intent.Intent]bool{}
		for _, entry := range out.Intents {
			tags[entry.Intent] = true
		}
		require.True(t, tags[intent.IntentSearchComponents])
		require.True(t, tags[intent.IntentUnknown])
	})

	t.Run("Unknown Session", func(t *testing.T) {
		_, err := uc.Session(ctx, "missing")
		require.True(t, errors.Is(err, query.ErrSessionNotFound))
	})

	t.Run("Existing Session", func(t *testing.T) {
		store.Append(ctx, "s1", session.Entry{RawQuery: "list processors"})
		out, err := uc.Session(ctx, "s1")
		require.NoError(t, err)
		require.Equal(t, "s1", out.Record.SessionID)
		require.Len(t, out.Record.Entries, 1)
	})
}
