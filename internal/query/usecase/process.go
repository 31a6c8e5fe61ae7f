package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"nifi-nlp-gateway/internal/query"
	"nifi-nlp-gateway/internal/session"
)

// Process runs the full pipeline: resolve intent, dispatch the operation,
// record the interaction. Resolution and dispatch never fail; the only
// error here is an empty query.
func (uc *implUsecase) Process(ctx context.Context, input query.ProcessInput) (query.ProcessOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return query.ProcessOutput{}, query.ErrEmptyQuery
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	resolved := uc.resolver.Resolve(ctx, input.Query)
	result := uc.dispatcher.Dispatch(ctx, resolved)

	uc.l.Infof(ctx, "internal.query.Process: %q -> %s (confidence %.2f, success %t)",
		input.Query, resolved.Intent, resolved.Confidence, result.Success)

	uc.sessions.Append(ctx, sessionID, session.Entry{
		Timestamp:  time.Now().UTC(),
		RawQuery:   input.Query,
		Intent:     string(resolved.Intent),
		Confidence: resolved.Confidence,
		Result: map[string]interface{}{
			"success": result.Success,
			"message": result.Message,
		},
	})

	return query.ProcessOutput{
		Success:    result.Success,
		Message:    result.Message,
		Data:       result.Data,
		Intent:     resolved.Intent,
		Confidence: resolved.Confidence,
		Timestamp:  time.Now().UTC(),
		SessionID:  sessionID,
	}, nil
}
