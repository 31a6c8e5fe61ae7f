package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"nifi-nlp-gateway/config"
	_ "nifi-nlp-gateway/docs" // Swagger docs
	"nifi-nlp-gateway/internal/httpserver"
	"nifi-nlp-gateway/internal/session"
	"nifi-nlp-gateway/pkg/llmprovider"
	"nifi-nlp-gateway/pkg/log"
	"nifi-nlp-gateway/pkg/nifi"
)

// @title       NiFi NLP Gateway API
// @description Natural language intent resolution and dispatch for Apache NiFi operations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting NiFi NLP Gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "NiFi URL: %s", cfg.NiFi.BaseURL)

	// 3. NiFi client
	nifiClient, err := nifi.New(nifi.Config{
		BaseURL:    cfg.NiFi.BaseURL,
		Username:   cfg.NiFi.Username,
		Password:   cfg.NiFi.Password,
		VerifySSL:  cfg.NiFi.VerifySSL,
		MaxRetries: cfg.NiFi.MaxRetries,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize NiFi client: ", err)
		return
	}

	if err := nifiClient.Authenticate(ctx); err != nil {
		logger.Warnf(ctx, "NiFi authentication failed (continuing unauthenticated): %v", err)
	}
	if nifiClient.HealthCheck(ctx) {
		logger.Info(ctx, "Successfully connected to NiFi")
	} else {
		logger.Warn(ctx, "NiFi health check failed")
	}

	// 4. LLM provider abstraction (optional; pattern matching suffices without it)
	var llmManager llmprovider.Provider

	providers, provErr := llmprovider.InitializeProviders(&cfg.LLM)
	if provErr != nil {
		logger.Warnf(ctx, "No LLM providers available, using pattern matching only: %v", provErr)
	} else {
		llmManager = llmprovider.NewManager(providers, managerConfig(cfg), logger)
		logger.Infof(ctx, "LLM providers initialized: %d", len(providers))
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		NiFiClient:      nifiClient,
		LLMManager:      llmManager,
		SessionConfig:   sessionConfig(cfg),
		RateLimitPerMin: cfg.Query.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func managerConfig(cfg *config.Config) *llmprovider.Config {
	retryDelay, err := time.ParseDuration(cfg.LLM.RetryDelay)
	if err != nil {
		retryDelay = time.Second
	}
	maxTotal, err := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	if err != nil {
		maxTotal = time.Minute
	}
	return &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}
}

func sessionConfig(cfg *config.Config) session.Config {
	ttl, err := time.ParseDuration(cfg.Session.TTL)
	if err != nil {
		ttl = session.DefaultTTL
	}
	return session.Config{
		MaxSessions: cfg.Session.MaxSessions,
		TTL:         ttl,
	}
}
