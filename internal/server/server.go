// Package server exposes the dashboard's resolved map over HTTP, read-only.
// It answers from a live interaction.Coordinator, so a headless deployment
// (rotator running, no terminal attached) serves the same frame a TUI user
// would see.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kauntidev/kaunti/internal/interaction"
	"github.com/kauntidev/kaunti/internal/match"
)

// Config holds server configuration.
type Config struct {
	Addr       string
	FiscalYear string
	Source     string
	AllowAll   bool // allow all CORS origins (dev mode)
}

// Server is the read-only county finance API.
type Server struct {
	cfg         Config
	coordinator *interaction.Coordinator
	resolver    *match.Resolver
	router      chi.Router
	httpServer  *http.Server
}

// New creates a server over a live coordinator. The resolver must be the
// same one the map was built with, or the API and the map will disagree
// about which boundary is which county.
func New(cfg Config, coordinator *interaction.Coordinator, resolver *match.Resolver) *Server {
	s := &Server{
		cfg:         cfg,
		coordinator: coordinator,
		resolver:    resolver,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS. The API is read-only, so only GET goes through.
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/records", s.handleRecords)
		r.Get("/records/{id}", s.handleRecordByID)
		r.Get("/map", s.handleMap)
		r.Get("/emphasis", s.handleEmphasis)
	})

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured address and blocks.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("api listening", "addr", s.cfg.Addr, "fiscal_year", s.cfg.FiscalYear)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
