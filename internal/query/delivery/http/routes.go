package http

import (
	"github.com/gin-gonic/gin"

	"nifi-nlp-gateway/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The query
// route is rate limited per client; introspection routes are not.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/query", mw.RateLimit(), h.Process)
	rg.GET("/intents", h.Intents)
	rg.GET("/sessions/:id", h.Session)
}
