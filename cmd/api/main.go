package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"financial-assistant/config"
	_ "financial-assistant/docs" // Swagger docs
	"financial-assistant/internal/agent"
	"financial-assistant/internal/agent/tools"
	assistantHTTP "financial-assistant/internal/assistant/delivery/http"
	assistantUC "financial-assistant/internal/assistant/usecase"
	"financial-assistant/internal/httpserver"
	"financial-assistant/internal/router"
	"financial-assistant/pkg/fmp"
	"financial-assistant/pkg/llmprovider"
	"financial-assistant/pkg/log"
)

// @title       Financial Assistant API
// @description Conversational financial assistant with LLM routing, Financial Modeling Prep data, and multi-source report composition.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
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

	logger.Info(ctx, "Starting Financial Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Financial Modeling Prep client
	fmpClient, err := fmp.New(logger, fmp.Config{
		APIKey:         cfg.FMP.APIKey,
		BaseURL:        cfg.FMP.BaseURL,
		Timeout:        time.Duration(cfg.FMP.TimeoutSeconds) * time.Second,
		CacheEnabled:   cfg.FMP.CacheEnabled,
		CacheTTL:       time.Duration(cfg.FMP.CacheTTLMinutes) * time.Minute,
		RequestsPerMin: cfg.FMP.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize FMP client: ", err)
		return
	}

	// 4. LLM providers + fallback manager
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	logger.Infof(ctx, "Initialized %d LLM provider(s)", len(providers))

	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	// 5. Tool registry
	registry := agent.NewToolRegistry()
	registry.Register(tools.NewSearchSymbolTool(fmpClient))

	// 6. Router + Assistant UseCase
	categoryRouter := router.New(llmManager, logger)

	uc := assistantUC.New(logger, llmManager, fmpClient, registry, categoryRouter, assistantUC.Config{
		SummaryUpdateThreshold: cfg.Assistant.SummaryUpdateThreshold,
		MaxHistory:             cfg.Assistant.MaxHistory,
		IncomeStatementPeriod:  cfg.FMP.IncomeStatementPeriod,
		SessionTTL:             time.Duration(cfg.Assistant.SessionTTLMinutes) * time.Minute,
	})

	// 7. HTTP delivery + server
	handler := assistantHTTP.New(logger, uc)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AssistantHandler: handler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// parseDuration parses a duration string, falling back to def on empty or
// malformed values.
func parseDuration(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}
