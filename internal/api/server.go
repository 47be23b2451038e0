package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dgallion1/policyqa/internal/config"
	"github.com/dgallion1/policyqa/internal/fetch"
	"github.com/dgallion1/policyqa/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Fetcher retrieves document bytes for a locator.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (data []byte, filename string, err error)
}

// Server is the HTTP API server for policyqa.
type Server struct {
	router   chi.Router
	pipeline *pipeline.Pipeline
	fetcher  Fetcher
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(p *pipeline.Pipeline, fetcher Fetcher, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		pipeline: p,
		fetcher:  fetcher,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleRoot)
	r.Get("/api/run", s.handleRunHint)

	// Optionally authenticated endpoints.
	r.Group(func(r chi.Router) {
		if s.cfg.RequireAuth {
			r.Use(BearerMiddleware(s.log))
		}
		r.Post("/api/run", s.handleRun)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"message":"policyqa is live"}`))
}

func (s *Server) handleRunHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"message":"Send a POST request with a document URL and questions."}`))
}

var _ Fetcher = (*fetch.Client)(nil)
