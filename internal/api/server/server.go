package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/plats-network/sponsor-ledger/internal/api/middleware"
	"github.com/plats-network/sponsor-ledger/internal/api/rest"
	"github.com/plats-network/sponsor-ledger/internal/api/shared/executor"
	"github.com/plats-network/sponsor-ledger/internal/logger"
	"github.com/plats-network/sponsor-ledger/internal/providers/temporal"
	"github.com/plats-network/sponsor-ledger/internal/store"
	"github.com/plats-network/sponsor-ledger/internal/transfer"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	Auth     middleware.AuthConfig
	Executor executor.Config
}

// Server wraps the HTTP server
type Server struct {
	config       Config
	store        store.Store
	orchestrator temporal.TemporalOrchestrator
	publisher    transfer.Publisher
	httpServer   *http.Server
}

// New creates a new API server
func New(
	cfg Config,
	store store.Store,
	orchestrator temporal.TemporalOrchestrator,
	publisher transfer.Publisher,
) *Server {
	return &Server{
		config:       cfg,
		store:        store,
		orchestrator: orchestrator,
		publisher:    publisher,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Create the shared executor holding the ledger business logic
	exec := executor.NewExecutor(s.config.Executor, s.store, s.orchestrator, s.publisher)

	// Create REST handler
	restHandler := rest.NewHandler(exec)

	// Setup REST routes
	rest.SetupRoutes(router, restHandler, s.config.Auth)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
