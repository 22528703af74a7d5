package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	sloghttp "github.com/samber/slog-http"

	"environews/internal/shared/config"
)

// Server previews the built site locally. It serves the output
// directory as-is; the pipeline is not involved per request.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a preview server.
func New(cfg *config.Config) *Server {
	return &Server{
		cfg:    cfg,
		logger: slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Start starts the HTTP server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", s.handleHealth)

	// Built site (index.html, category pages, feed.xml, styles.css)
	mux.Handle("GET /", http.FileServer(http.Dir(s.cfg.Site.OutputDir)))

	addr := fmt.Sprintf(":%s", s.cfg.Site.HTTPPort)
	s.logger.Info("Preview server starting", "addr", addr, "dir", s.cfg.Site.OutputDir)

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
