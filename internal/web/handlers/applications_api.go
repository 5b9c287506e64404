package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"apptrack/internal/store"
	"apptrack/pkg/api"
)

// APISummary handles GET /api/summary.
func (h *Handlers) APISummary(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	summary := h.store.StatusSummary()
	h.mu.Unlock()

	h.respondJson(w, http.StatusOK, summary)
}

// APIListApplications handles GET /api/applications.
func (h *Handlers) APIListApplications(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	apps := h.store.All()
	h.mu.Unlock()

	if apps == nil {
		apps = []*store.Application{}
	}
	h.respondJson(w, http.StatusOK, map[string]any{"applications": apps})
}

// APIAddApplication handles POST /api/applications.
func (h *Handlers) APIAddApplication(w http.ResponseWriter, r *http.Request) {
	var req api.AddApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.httpError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Company == "" || req.Position == "" {
		h.httpError(w, "Company and position are required", http.StatusBadRequest)
		return
	}

	appDate, err := store.ValidateDate(req.ApplicationDate)
	if err != nil {
		h.httpError(w, err.Error(), http.StatusBadRequest)
		return
	}

	app, err := store.NewApplication(store.Input{
		Company:          req.Company,
		Position:         req.Position,
		Status:           store.Status(req.Status),
		ApplicationDate:  appDate,
		JobURL:           req.JobURL,
		SalaryRange:      req.SalaryRange,
		Location:         req.Location,
		Notes:            req.Notes,
		ContactPerson:    req.ContactPerson,
		ContactEmail:     req.ContactEmail,
		JobPostingID:     req.JobPostingID,
		JobPostingSource: req.JobPostingSource,
		JobDescription:   req.JobDescription,
	})
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			h.httpError(w, verr.Message, http.StatusBadRequest)
			return
		}
		h.httpError(w, "Failed to create application", http.StatusInternalServerError)
		return
	}

	h.mu.Lock()
	id, err := h.store.Add(app)
	h.mu.Unlock()
	if err != nil {
		h.logger.Error("failed to persist application", "error", err)
		h.httpError(w, "Failed to save application", http.StatusInternalServerError)
		return
	}

	h.respondJson(w, http.StatusCreated, api.AddApplicationResponse{Success: true, ApplicationID: id})
}

// APIGetApplication handles GET /api/applications/{id}.
func (h *Handlers) APIGetApplication(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	app, ok := h.store.Get(r.PathValue("id"))
	h.mu.Unlock()

	if !ok {
		h.httpError(w, "Application not found", http.StatusNotFound)
		return
	}
	h.respondJson(w, http.StatusOK, app)
}

// APIUpdateApplication handles PUT /api/applications/{id}.
func (h *Handlers) APIUpdateApplication(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.httpError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	upd := store.ApplicationUpdate{
		Company:       req.Company,
		Position:      req.Position,
		Status:        req.Status,
		JobURL:        req.JobURL,
		SalaryRange:   req.SalaryRange,
		Location:      req.Location,
		Notes:         req.Notes,
		ContactPerson: req.ContactPerson,
		ContactEmail:  req.ContactEmail,
	}

	h.mu.Lock()
	ok, err := h.store.Update(r.PathValue("id"), upd)
	h.mu.Unlock()

	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			h.httpError(w, verr.Message, http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to update application", "error", err)
		h.httpError(w, "Failed to update application", http.StatusInternalServerError)
		return
	}
	if !ok {
		h.httpError(w, "Application not found", http.StatusNotFound)
		return
	}
	h.respondJson(w, http.StatusOK, api.SuccessResponse{Success: true})
}

// APIDeleteApplication handles DELETE /api/applications/{id}.
func (h *Handlers) APIDeleteApplication(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	ok, err := h.store.Delete(r.PathValue("id"))
	h.mu.Unlock()

	if err != nil {
		h.logger.Error("failed to delete application", "error", err)
		h.httpError(w, "Failed to delete application", http.StatusInternalServerError)
		return
	}
	if !ok {
		h.httpError(w, "Application not found", http.StatusNotFound)
		return
	}
	h.respondJson(w, http.StatusOK, api.SuccessResponse{Success: true})
}

// APIJobSearch handles GET /api/jobs/search.
func (h *Handlers) APIJobSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.httpError(w, "Query parameter is required", http.StatusBadRequest)
		return
	}
	location := r.URL.Query().Get("location")

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 {
			h.httpError(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = l
	}

	jobs := h.jobs.Search(r.Context(), query, location, limit)
	h.respondJson(w, http.StatusOK, map[string]any{"jobs": jobs, "count": len(jobs)})
}

// APIStatus handles GET /api/jobs/status, reporting the job search provider chain.
func (h *Handlers) APIStatus(w http.ResponseWriter, r *http.Request) {
	h.respondJson(w, http.StatusOK, h.jobs.Status())
}
