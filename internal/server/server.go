package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/splitpixel/splitpixel/internal/store"
)

type Server struct {
	store     *store.SQLiteStore
	port      int
	baseURL   string // optional override; derived from the request when empty
	logger    *zap.Logger
	router    *http.ServeMux
	startTime time.Time
}

func New(s *store.SQLiteStore, port int, baseURL string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &Server{
		store:     s,
		port:      port,
		baseURL:   baseURL,
		logger:    logger,
		router:    http.NewServeMux(),
		startTime: time.Now(),
	}

	srv.setupRoutes()
	return srv
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/health", s.handleHealth)
	s.router.HandleFunc("/s/", s.handleScript)
	s.router.HandleFunc("/track", s.handleTrack)
	s.router.HandleFunc("/api/stats/", s.handleStats)
}

func (s *Server) Start() error {
	return s.StartWithOptions(true)
}

// StartQuiet starts the server without printing startup messages
func (s *Server) StartQuiet() error {
	return s.StartWithOptions(false)
}

func (s *Server) StartWithOptions(printMessages bool) error {
	// Persist the public URL so CLI commands can print correct embeds
	serverURL := s.baseURL
	if serverURL == "" {
		serverURL = fmt.Sprintf("http://localhost:%d", s.port)
	}
	if err := s.store.SetSetting(context.Background(), "server_url", serverURL); err != nil {
		s.logger.Warn("failed to persist server url", zap.Error(err))
	}

	addr := fmt.Sprintf(":%d", s.port)

	if printMessages {
		fmt.Println()
		fmt.Printf("splitpixel running on http://localhost:%d\n", s.port)
		fmt.Printf("Embed scripts served from %s/s/{projectId}\n", serverURL)
		fmt.Println()
		fmt.Println("Press Ctrl+C to stop")
	}

	return http.ListenAndServe(addr, s.router)
}

func (s *Server) Store() *store.SQLiteStore {
	return s.store
}

func (s *Server) StartTime() time.Time {
	return s.startTime
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// apiBaseURL resolves the base URL embedded in generated scripts:
// the configured override when present, otherwise the scheme and host
// the request arrived on.
func (s *Server) apiBaseURL(r *http.Request) string {
	if s.baseURL != "" {
		return s.baseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}
