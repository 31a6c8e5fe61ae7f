package query

import "context"

// UseCase defines the business logic interface for the query domain.
type UseCase interface {
	// Process resolves the query's intent, executes the matching operation,
	// and records the interaction in the session history.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)

	// Intents returns the static catalog of supported intent tags with
	// example queries. No backend call is made.
	Intents(ctx context.Context) IntentsOutput

	// Session returns the bounded interaction history for one session id.
	Session(ctx context.Context, sessionID string) (SessionOutput, error)
}
