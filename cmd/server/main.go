// Package main is the entry point for the SerpAPI flight tools service.
//
//	@title						SerpAPI Flight Service
//	@version					1.0.0
//	@description				A stateless flight tools service that searches flights, looks up airports, and fetches price trends through the SerpAPI flight data API.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-tools/serpapi-flight-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-tools/serpapi-flight-service/docs"

	toolhttp "github.com/flight-tools/serpapi-flight-service/internal/adapter/http"
	"github.com/flight-tools/serpapi-flight-service/internal/adapter/http/middleware"
	"github.com/flight-tools/serpapi-flight-service/internal/config"
	"github.com/flight-tools/serpapi-flight-service/internal/infrastructure/logger"
	"github.com/flight-tools/serpapi-flight-service/internal/infrastructure/timeutil"
	"github.com/flight-tools/serpapi-flight-service/internal/serpapi"
	"github.com/flight-tools/serpapi-flight-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize structured logger
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: toolhttp.ServerName,
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("api_key_configured", cfg.SerpAPI.Key != "").
		Msg("Configuration loaded")

	if cfg.SerpAPI.Key == "" {
		log.Warn().Msg("SERPAPI_KEY not set; tool calls will return configuration errors")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware (request ID, request logging, panic recovery)
	middleware.Setup(e, log.Logger)

	// Setup routes
	setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupRoutes wires the client, use case, and handler and registers routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	client := serpapi.NewClientWithBaseURL(cfg.SerpAPI.BaseURL, cfg.SerpAPI.Timeout, log.Logger)

	tools := usecase.NewFlightTools(client, usecase.Config{
		APIKey: cfg.SerpAPI.Key,
	}, timeutil.NewRealClock(), log.Logger)

	handler := toolhttp.NewToolHandler(tools, timeutil.NewRealClock())
	toolhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
