package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nifi-nlp-gateway/internal/dispatch"
	"nifi-nlp-gateway/internal/intent"
	"nifi-nlp-gateway/internal/middleware"
	"nifi-nlp-gateway/internal/query/delivery/http"
	"nifi-nlp-gateway/internal/query/usecase"
	"nifi-nlp-gateway/internal/session"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires the query domain: resolver, dispatcher,
// session store, use case, HTTP handler, routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	var classifier intent.Classifier
	if srv.llmManager != nil {
		classifier = intent.NewClassifier(srv.llmManager, srv.l)
	} else {
		srv.l.Warnf(ctx, "No LLM provider configured, resolving intents with pattern matching only")
	}

	resolver := intent.New(srv.l, classifier)
	dispatcher := dispatch.New(srv.l, srv.nifiClient)
	sessions := session.New(srv.sessionConfig)

	uc := usecase.New(srv.l, resolver, dispatcher, sessions)
	h := http.New(srv.l, uc)

	mw := middleware.New(srv.l, srv.rateLimitPerMin)

	api := srv.gin.Group("/api/v1")
	http.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Query domain registered at /api/v1")
	return nil
}
