package dispatch

import (
	"context"
	"errors"

	"nifi-nlp-gateway/internal/intent"
	"nifi-nlp-gateway/pkg/nifi"
)

// Dispatch routes the processed intent to its handler and converts every
// failure into a failed envelope. Intents without a wired handler get the
// fixed placeholder envelope: success is reported as true, the message
// states the intent is not yet implemented, and data echoes the tag and
// parameters.
func (d *dispatcher) Dispatch(ctx context.Context, processed intent.ProcessedIntent) Result {
	if d.client == nil {
		return failed(ErrMsgNotInitialized)
	}

	handler, ok := d.handlers[processed.Intent]
	if !ok {
		return Result{
			Success: true,
			Message: "Intent '" + string(processed.Intent) + "' is not yet implemented",
			Data: map[string]interface{}{
				"intent":     processed.Intent,
				"parameters": processed.Parameters,
			},
		}
	}

	result, err := handler(ctx, processed.Parameters)
	if err != nil {
		d.l.Errorf(ctx, "%s: %s failed: %v", LogPrefixDispatch, processed.Intent, err)

		var apiErr *nifi.APIError
		if errors.As(err, &apiErr) {
			return failed("NiFi API error: " + apiErr.Message)
		}
		return failed("Operation failed: " + err.Error())
	}

	return result
}

// placeholder builds a handler for operations that are recognized but not
// wired to the backend yet. The envelope still reports success.
func placeholder(message string) handlerFunc {
	return func(ctx context.Context, params intent.Parameters) (Result, error) {
		return Result{
			Success: true,
			Message: message,
			Data: map[string]interface{}{
				"parameters": params,
			},
		}, nil
	}
}
