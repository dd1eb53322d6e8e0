package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/AgentOS/vfs/internal/api/http"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/api/middleware"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/infrastructure/config"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/service"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router    *gin.Engine
	registry  *service.Registry
	namespace *Namespace
	logger    *logging.Logger
	config    *config.Config
	metrics   *monitoring.Metrics
}

// NewServer creates a new server instance. A nil logger is built from the
// logging section of cfg.
func NewServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		var err error
		logger, err = logging.FromSettings(cfg.Logging.Level, cfg.Logging.Development)
		if err != nil {
			return nil, err
		}
	}

	logger.Info("Initializing VFS server",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
		zap.String("store", cfg.Persistence.Store),
	)

	// Each server owns its registry so tests can build several.
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := monitoring.NewMetrics(promRegistry)

	namespace, err := OpenNamespace(cfg, logger.Logger, metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to open namespace: %w", err)
	}

	serviceRegistry := service.NewRegistry()
	if err := serviceRegistry.Register(namespace.Provider); err != nil {
		namespace.Close()
		return nil, fmt.Errorf("failed to register namespace provider: %w", err)
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			IdleTimeout:       middleware.DefaultIdleTimeout,
		}))
	}

	handlers := apihttp.NewHandlers(serviceRegistry, namespace.Provider, namespace.Storage, logger.Named("http").Logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	router.GET("/namespace/snapshot", handlers.Snapshot)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})))

	logger.Info("Server initialized successfully")

	return &Server{
		router:    router,
		registry:  serviceRegistry,
		namespace: namespace,
		logger:    logger,
		config:    cfg,
		metrics:   metrics,
	}, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Server.Host, s.config.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	return <-errCh
}

// Close releases the namespace store and flushes the logger.
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	if err := s.namespace.Close(); err != nil {
		s.logger.Error("Failed to close namespace store", zap.Error(err))
		return fmt.Errorf("failed to close namespace store: %w", err)
	}
	s.logger.Info("Closed namespace store")

	_ = s.logger.Sync()
	return nil
}
