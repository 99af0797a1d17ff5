package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/cat-arcade/internal/core"
	"github.com/vovakirdan/cat-arcade/internal/session"
)

// ServerConfig holds configuration for the web host.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// SessionTTL is how long a session may sit untouched and unwatched
	// before it is removed. Zero keeps sessions until deleted.
	SessionTTL time.Duration

	// Resolution is the clock period of each session's driver.
	Resolution time.Duration

	// Seed fixes the RNG seed of every session; 0 seeds from the clock.
	Seed int64
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:    ":8080",
		SessionTTL: 15 * time.Minute,
		Resolution: session.DefaultResolution,
	}
}

// Server is the HTTP host for arcade sessions.
type Server struct {
	config ServerConfig
	hub    *Hub
	router *gin.Engine
	http   *http.Server
	logger *log.Logger
}

// NewServer creates the router and the session hub.
func NewServer(cfg ServerConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade-web",
		})
	}

	runtime := core.DefaultConfig()
	runtime.Seed = cfg.Seed
	hub := NewHub(cfg.SessionTTL, cfg.Resolution, runtime, logger)

	srv := &Server{
		config: cfg,
		hub:    hub,
		logger: logger,
	}
	srv.router = srv.routes(NewHandler(hub))
	srv.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           srv.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv
}

func (s *Server) routes(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	api := router.Group("/api")
	{
		api.GET("/games", h.ListGames)

		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions/:id", h.GetSession)
		api.DELETE("/sessions/:id", h.DeleteSession)
		api.POST("/sessions/:id/start", h.Start)
		api.POST("/sessions/:id/restart", h.Restart)
		api.POST("/sessions/:id/select", h.Select)
		api.POST("/sessions/:id/direction", h.Direction)
		api.POST("/sessions/:id/viewport", h.Viewport)
		api.GET("/sessions/:id/ws", h.Stream)
	}

	return router
}

// requestLogger logs each request once it completes.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the session hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}

// ListenAndServe starts the web server and blocks until an interrupt or
// ctx ends it.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go s.hub.Janitor(ctx, sweepInterval(s.config.SessionTTL))

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.config.Address)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.hub.Close()
			return fmt.Errorf("web: %w", err)
		}
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown stops accepting requests and tears every session down.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Streams end once their sessions close.
	s.hub.Close()
	return s.http.Shutdown(ctx)
}

func sweepInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return time.Minute
	}
	return max(ttl/4, time.Second)
}
