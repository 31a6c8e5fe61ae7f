package usecase

import (
	"context"

	"nifi-nlp-gateway/internal/intent"
	"nifi-nlp-gateway/internal/query"
)

// Intents returns the static catalog. Reference data only.
func (uc *implUsecase) Intents(ctx context.Context) query.IntentsOutput {
	entries := intent.Catalog()
	return query.IntentsOutput{
		Intents: entries,
		Count:   len(entries),
	}
}

// Session returns the bounded history for sessionID.
func (uc *implUsecase) Session(ctx context.Context, sessionID string) (query.SessionOutput, error) {
	record, ok := uc.sessions.Get(ctx, sessionID)
	if !ok {
		return query.SessionOutput{}, query.ErrSessionNotFound
	}
	return query.SessionOutput{Record: record}, nil
}
