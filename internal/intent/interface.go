package intent

import "context"

// Resolver turns free-text queries into processed intents.
type Resolver interface {
	// Resolve classifies the query and extracts its parameters. It never
	// fails: classifier errors degrade to the pattern-matched result.
	Resolve(ctx context.Context, query string) ProcessedIntent
}
