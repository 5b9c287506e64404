// Package handlers contains the HTTP handlers for the web interface and JSON API.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"apptrack/internal/jobsearch"
	"apptrack/internal/store"
	"apptrack/pkg/api"
)

// Renderer renders a named HTML page with the given data.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data any)
}

// Handlers holds all HTTP handlers and their dependencies. The JSON-file
// store is not safe for concurrent use, so every store access is serialized
// through the mutex.
type Handlers struct {
	mu     sync.Mutex
	store  store.Store
	jobs   *jobsearch.Service
	pages  Renderer
	logger *slog.Logger
}

// New creates a new Handlers instance with the given dependencies.
func New(s store.Store, jobs *jobsearch.Service, pages Renderer, logger *slog.Logger) *Handlers {
	return &Handlers{store: s, jobs: jobs, pages: pages, logger: logger}
}

// A helper function to write standard JSON responses.
func (h *Handlers) respondJson(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// A helper function to return consistent error messages.
func (h *Handlers) httpError(w http.ResponseWriter, message string, code int) {
	h.respondJson(w, code, api.ErrorResponse{
		Error: message,
		Code:  strconv.Itoa(code),
	})
}
