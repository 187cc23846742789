package api

import (
	"context"
	"net/http"
	"time"
)

// Server wraps the HTTP server for the contact API.
type Server struct {
	handler http.Handler
	server  *http.Server
}

// NewServer creates an API server with all routes configured.
func NewServer(h *Handlers, hc *HealthChecker, allowedOrigins []string) *Server {
	return &Server{
		handler: SetupRoutes(h, hc, allowedOrigins),
	}
}

// ListenAndServe starts the HTTP server. The submission pipeline blocks
// on two outbound calls (verification, mail delivery), both of which
// carry their own timeouts well inside these limits.
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing
func (s *Server) Handler() http.Handler {
	return s.handler
}
