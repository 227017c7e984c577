// Package http provides the operational HTTP server: liveness, readiness and Prometheus
// metrics. It exposes no record data and no key material.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/clinicrecords/fieldvault/internal/errors"
	"github.com/clinicrecords/fieldvault/internal/httputil"
	"github.com/clinicrecords/fieldvault/internal/metrics"
)

// KeyringStatus reports whether master keys are loaded.
type KeyringStatus interface {
	ActiveVersion() uint
}

// Server represents the HTTP server
type Server struct {
	db      *sql.DB
	keyring KeyringStatus
	server  *http.Server
	router  *gin.Engine
	logger  *slog.Logger
}

// NewServer creates a new HTTP server
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter registers the routes. metricsProvider may be nil when metrics are
// disabled, in which case /metrics is not served.
func (s *Server) SetupRouter(
	ginMode string,
	keyring KeyringStatus,
	metricsProvider *metrics.Provider,
	metricsNamespace string,
) {
	gin.SetMode(ginMode)
	s.keyring = keyring

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), metricsNamespace))
		router.GET("/metrics", gin.WrapH(metricsProvider.Handler()))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	router.NoRoute(func(c *gin.Context) {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrNotFound, "route "+c.Request.URL.Path), nil)
	})

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports that the process is alive.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the database is reachable and the keyring is loaded.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok", "keyring": "ok"}
	ready := true

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.db == nil || s.db.PingContext(ctx) != nil {
		components["database"] = "error"
		ready = false
	}

	if s.keyring == nil || s.keyring.ActiveVersion() == 0 {
		components["keyring"] = "error"
		ready = false
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router
	s.server.BaseContext = func(net.Listener) context.Context {
		return ctx
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
