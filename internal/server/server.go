// Package server exposes the HTTP surface of the bot: the LINE webhook
// endpoint and a health check.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/kittipat/linegamebot/internal/config"
	"github.com/kittipat/linegamebot/internal/line"
	"github.com/kittipat/linegamebot/internal/logger"
)

// Server wraps the gin engine and the underlying http.Server, and
// manages their lifecycle.
type Server struct {
	engine          *gin.Engine
	srv             *http.Server
	dispatcher      *line.Dispatcher
	log             *slog.Logger
	shutdownTimeout time.Duration
}

// New creates the HTTP server with all routes registered.
func New(cfg config.ServerConfig, dispatcher *line.Dispatcher, log *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery(), logger.Middleware(log))

	s := &Server{
		engine:          engine,
		dispatcher:      dispatcher,
		log:             log.With("component", "http_server"),
		shutdownTimeout: cfg.ShutdownTimeout,
	}

	engine.POST("/webhook", s.handleWebhook)
	engine.GET("/healthz", s.handleHealth)

	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// handleWebhook maps dispatcher outcomes onto the transport contract:
// 200 "OK" when every event was handled, 400 for invalid callbacks, and
// 500 when an event unit failed so the platform may redeliver.
func (s *Server) handleWebhook(c *gin.Context) {
	if err := s.dispatcher.HandleCallback(c.Request.Context(), c.Request); err != nil {
		if errors.Is(err, line.ErrInvalidRequest) {
			s.log.WarnContext(c.Request.Context(), "Rejected webhook callback", "error", err)
			c.String(http.StatusBadRequest, "Bad Request")
			return
		}
		s.log.ErrorContext(c.Request.Context(), "Webhook dispatch failed", "error", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.String(http.StatusOK, "OK")
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Run starts the HTTP server and shuts it down gracefully when the
// context is cancelled. It returns when the server has stopped.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("Starting HTTP server", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server stopped unexpectedly: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("Shutdown signal received, stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error("Error shutting down HTTP server", "error", err)
			return fmt.Errorf("failed to shut down http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
