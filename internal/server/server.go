// Package server provides the HTTP and WebSocket boundary for the Huehand
// web UI.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/priyam/huehand/internal/app"
	"github.com/priyam/huehand/internal/server/api"
	"github.com/priyam/huehand/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	App       *app.App
	Logger    *slog.Logger
}

// Server is the HTTP server for the Huehand application.
type Server struct {
	config Config
	logger *slog.Logger
	mux    *http.ServeMux
	feed   *ColorFeed
	start  time.Time
}

// New creates a Server and registers all routes. When an App is configured
// the server subscribes its color feed to pipeline updates.
func New(config Config) *Server {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config: config,
		logger: logger,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Store != nil {
		paletteHandler := api.NewPaletteHandler(s.config.Store)
		s.mux.Handle("/api/palette", paletteHandler)
		s.mux.Handle("/api/palette/", paletteHandler)

		s.mux.Handle("/api/transitions", api.NewTransitionsHandler(s.config.Store))

		effectsHandler := api.NewEffectsHandler(s.config.Store)
		s.mux.Handle("/api/effects", effectsHandler)
		s.mux.Handle("/api/effects/", effectsHandler)
	}

	if s.config.App != nil {
		s.mux.Handle("/api/state", api.NewStateHandler(s.config.App.Selector()))

		s.feed = NewColorFeed(s.logger)
		s.config.App.OnFrame(s.feed.Publish)
		s.mux.Handle("/api/colors", s.feed)

		s.mux.Handle("/api/stream", NewStreamHandler(s.config.App.Camera()))
	}

	if s.config.StaticDir != "" {
		s.mux.Handle("/", http.FileServer(http.Dir(s.config.StaticDir)))
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// ListenAndServe starts the HTTP server on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return http.ListenAndServe(addr, s)
}
