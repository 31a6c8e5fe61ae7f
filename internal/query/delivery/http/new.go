package http

import (
	"github.com/gin-gonic/gin"

	"nifi-nlp-gateway/internal/query"
	"nifi-nlp-gateway/pkg/log"
)

// Handler is the public interface for the query HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
	Intents(c *gin.Context)
	Session(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc query.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the query domain.
func New(l log.Logger, uc query.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
