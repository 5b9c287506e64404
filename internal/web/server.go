package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"apptrack/internal/jobsearch"
	"apptrack/internal/store"
	"apptrack/internal/web/handlers"
	"apptrack/internal/web/middleware"
)

// Server is the HTTP server for the web interface and JSON API.
type Server struct {
	httpServer *http.Server
}

// Options configures the server.
type Options struct {
	Addr           string
	APIRateLimit   float64
	MetricsHandler http.Handler
}

// New wires the routes and middleware for the web server.
func New(opts Options, s store.Store, jobs *jobsearch.Service, logger *slog.Logger) (*Server, error) {
	pages, err := NewPages(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	h := handlers.New(s, jobs, pages, logger)
	rateLimitMW := middleware.RateLimit(opts.APIRateLimit, int(opts.APIRateLimit)+1)

	mux := http.NewServeMux()

	// HTML pages
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("GET /applications", h.Applications)
	mux.HandleFunc("GET /application/{id}", h.ViewApplication)
	mux.HandleFunc("GET /add", h.AddApplicationForm)
	mux.HandleFunc("POST /add", h.AddApplication)
	mux.HandleFunc("GET /edit/{id}", h.EditApplicationForm)
	mux.HandleFunc("POST /edit/{id}", h.EditApplication)
	mux.HandleFunc("POST /delete/{id}", h.DeleteApplication)
	mux.HandleFunc("GET /search", h.SearchPage)
	mux.HandleFunc("GET /analytics", h.Analytics)
	mux.HandleFunc("GET /export", h.Export)
	mux.HandleFunc("GET /jobs", h.JobSearchPage)
	mux.HandleFunc("GET /job/{id}", h.JobDetailsPage)
	mux.HandleFunc("GET /apply-from-job/{id}", h.ApplyFromJob)

	// JSON API, rate limited per client IP
	mux.Handle("GET /api/summary", rateLimitMW(http.HandlerFunc(h.APISummary)))
	mux.Handle("GET /api/applications", rateLimitMW(http.HandlerFunc(h.APIListApplications)))
	mux.Handle("POST /api/applications", rateLimitMW(http.HandlerFunc(h.APIAddApplication)))
	mux.Handle("GET /api/applications/{id}", rateLimitMW(http.HandlerFunc(h.APIGetApplication)))
	mux.Handle("PUT /api/applications/{id}", rateLimitMW(http.HandlerFunc(h.APIUpdateApplication)))
	mux.Handle("DELETE /api/applications/{id}", rateLimitMW(http.HandlerFunc(h.APIDeleteApplication)))
	mux.Handle("GET /api/jobs/search", rateLimitMW(http.HandlerFunc(h.APIJobSearch)))
	mux.Handle("GET /api/jobs/status", rateLimitMW(http.HandlerFunc(h.APIStatus)))

	mux.HandleFunc("GET /healthz", h.Healthz)
	if opts.MetricsHandler != nil {
		mux.Handle("GET /metrics", opts.MetricsHandler)
	}

	mux.HandleFunc("/", h.NotFound)

	return &Server{
		httpServer: &http.Server{
			Addr:         opts.Addr,
			Handler:      middleware.RequestID(logger)(mux),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}, nil
}

// Run starts the HTTP server. It blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutDownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return s.Shutdown(shutDownCtx)
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
