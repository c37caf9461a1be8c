// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input coercion, engine invocation,
// output serialization. The API NEVER performs pricing logic.
package api

import (
	"net/http"
	"time"

	"github.com/dung89nm/ghn-baogia/core/pricing"
)

// Server is the API server
type Server struct {
	handler *Handler
	mux     *http.ServeMux
	version string
	engine  *pricing.Engine
}

// NewServer creates a new API server over a pricing engine.
func NewServer(version string, engine *pricing.Engine, defaults pricing.Defaults) *Server {
	s := &Server{
		handler: NewHandler(engine, defaults),
		mux:     http.NewServeMux(),
		version: version,
		engine:  engine,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /quote", s.handler.HandleQuote)
	s.mux.HandleFunc("POST /parse", s.handler.HandleParse)
	s.mux.HandleFunc("POST /query", s.handler.HandleQuery)

	// Supporting endpoints
	s.mux.HandleFunc("GET /tariff", s.handleTariff)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleTariff handles GET /tariff
func (s *Server) handleTariff(w http.ResponseWriter, r *http.Request) {
	s.handler.writeJSON(w, s.engine.Table().Summarize(), http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.handler.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"tariff":  s.engine.Table().Version(),
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.handler.writeJSON(w, map[string]string{
		"version":        s.version,
		"engine":         "ghn-baogia",
		"tariff_version": s.engine.Table().Version(),
	}, http.StatusOK)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
