package usecase

import (
	"nifi-nlp-gateway/internal/dispatch"
	"nifi-nlp-gateway/internal/intent"
	"nifi-nlp-gateway/internal/query"
	"nifi-nlp-gateway/internal/session"
	"nifi-nlp-gateway/pkg/log"
)

type implUsecase struct {
	l          log.Logger
	resolver   intent.Resolver
	dispatcher dispatch.Dispatcher
	sessions   session.Store
}

var _ query.UseCase = (*implUsecase)(nil)

// New creates the query use case.
func New(l log.Logger, resolver intent.Resolver, dispatcher dispatch.Dispatcher, sessions session.Store) query.UseCase {
	return &implUsecase{
		l:          l,
		resolver:   resolver,
		dispatcher: dispatcher,
		sessions:   sessions,
	}
}
