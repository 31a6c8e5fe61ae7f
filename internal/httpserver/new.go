package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"nifi-nlp-gateway/internal/session"
	"nifi-nlp-gateway/pkg/llmprovider"
	"nifi-nlp-gateway/pkg/log"
	"nifi-nlp-gateway/pkg/nifi"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Query domain collaborators
	nifiClient      nifi.INiFi
	llmManager      llmprovider.Provider
	sessionConfig   session.Config
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Query domain collaborators
	NiFiClient      nifi.INiFi
	LLMManager      llmprovider.Provider
	SessionConfig   session.Config
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		nifiClient:      cfg.NiFiClient,
		llmManager:      cfg.LLMManager,
		sessionConfig:   cfg.SessionConfig,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
