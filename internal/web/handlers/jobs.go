package handlers

import (
	"net/http"

	"apptrack/internal/jobsearch"
	"apptrack/internal/store"
)

// JobSearchPage handles GET /jobs.
func (h *Handlers) JobSearchPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	location := r.URL.Query().Get("location")

	var jobs []jobsearch.Listing
	if query != "" {
		jobs = h.jobs.Search(r.Context(), query, location, 20)
	}

	h.pages.Render(w, http.StatusOK, "jobs", struct {
		Flash    flash
		Query    string
		Location string
		Jobs     []jobsearch.Listing
	}{flashFrom(r), query, location, jobs})
}

// JobDetailsPage handles GET /job/{id}.
func (h *Handlers) JobDetailsPage(w http.ResponseWriter, r *http.Request) {
	job := h.jobs.Details(r.Context(), r.PathValue("id"))
	if job == nil {
		redirectWithFlash(w, r, "/jobs", "Job not found", "error")
		return
	}

	h.pages.Render(w, http.StatusOK, "job_details", struct {
		Flash flash
		Job   *jobsearch.Listing
	}{flashFrom(r), job})
}

// ApplyFromJob handles GET /apply-from-job/{id}, pre-filling the add form
// from an external job listing.
func (h *Handlers) ApplyFromJob(w http.ResponseWriter, r *http.Request) {
	job := h.jobs.Details(r.Context(), r.PathValue("id"))
	if job == nil {
		redirectWithFlash(w, r, "/jobs", "Job not found", "error")
		return
	}

	h.pages.Render(w, http.StatusOK, "add_application", formData{
		Flash:    flashFrom(r),
		Statuses: store.AllStatuses(),
		Prefill:  jobsearch.ApplicationInput(job),
		FromJob:  true,
	})
}
