package dispatch

import (
	"context"

	"nifi-nlp-gateway/internal/intent"
)

// Dispatcher routes a resolved intent to its operation handler. Every
// outcome, including validation and backend failures, is a well-formed
// Result; Dispatch never returns an error.
type Dispatcher interface {
	Dispatch(ctx context.Context, processed intent.ProcessedIntent) Result
}
