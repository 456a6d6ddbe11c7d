// Package api exposes the events REST surface over an EventStore.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/noexpect9/course-schedule/internal/store"
)

// Config holds server settings.
type Config struct {
	ListenAddr string
}

// pinger is implemented by stores that can report reachability (the SQLite
// store does); healthz degrades gracefully when the store cannot.
type pinger interface {
	Ping(ctx context.Context) error
}

// Server is the HTTP API server for the events store.
type Server struct {
	config Config
	http   *http.Server
	store  store.EventStore
}

// NewServer creates a new Server over the given store.
func NewServer(cfg Config, st store.EventStore) *Server {
	s := &Server{
		config: cfg,
		store:  st,
	}

	s.http = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Start begins listening for HTTP requests (non-blocking).
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	go func() {
		if err := s.http.Serve(ln); err != nil && err != http.ErrServerClosed {
			slog.Error("http server", "err", err)
		}
	}()

	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// routes builds the HTTP handler with all routes and middleware.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)

	mux.HandleFunc("GET /events", s.handleListEvents)
	mux.HandleFunc("POST /events", s.handleCreateEvent)
	mux.HandleFunc("GET /events/{id}", s.handleGetEvent)
	mux.HandleFunc("PUT /events/{id}", s.handleUpdateEvent)
	mux.HandleFunc("DELETE /events/{id}", s.handleDeleteEvent)

	return chain(mux, recoveryMiddleware, requestIDMiddleware, loggerMiddleware, loggingMiddleware, maxBytesMiddleware(1<<20))
}

// handleHealth returns a health check response, pinging the store when it
// supports that.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if p, ok := s.store.(pinger); ok {
		if err := p.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "error", "detail": "store unreachable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
