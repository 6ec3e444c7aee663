package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-deployer/internal/api/middleware"
	"github.com/feral-file/ff-token-deployer/internal/api/rest"
	"github.com/feral-file/ff-token-deployer/internal/api/shared/executor"
	"github.com/feral-file/ff-token-deployer/internal/compiler"
	"github.com/feral-file/ff-token-deployer/internal/logger"
	"github.com/feral-file/ff-token-deployer/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug              bool
	Host               string
	Port               int
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	CORSAllowedOrigins []string
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	compiler   compiler.Compiler
	router     *gin.Engine
	httpServer *http.Server
}

// New creates a new API server. The HTTP server is built here so Shutdown is safe
// to call from another goroutine at any time, including before Start.
func New(cfg Config, store store.Store, compiler compiler.Compiler) *Server {
	s := &Server{
		config:   cfg,
		store:    store,
		compiler: compiler,
	}
	s.router = s.newRouter()
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// Router returns the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) newRouter() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(s.config.CORSAllowedOrigins))

	exec := executor.NewExecutor(s.store, s.compiler)
	rest.SetupRoutes(router, rest.NewHandler(exec))

	return router
}

// Start serves HTTP until Shutdown is called. It returns nil after a shutdown,
// also when Shutdown ran first.
func (s *Server) Start() error {
	logger.Info("Starting API server",
		zap.String("address", s.httpServer.Addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
