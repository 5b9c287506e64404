package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"apptrack/internal/report"
	"apptrack/internal/store"
)

// flash carries a one-shot notification across a redirect via query
// parameters; there is no session state to keep it in.
type flash struct {
	Message string
	Kind    string
}

func flashFrom(r *http.Request) flash {
	return flash{
		Message: r.URL.Query().Get("flash"),
		Kind:    r.URL.Query().Get("kind"),
	}
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, target, message, kind string) {
	v := url.Values{}
	v.Set("flash", message)
	v.Set("kind", kind)
	http.Redirect(w, r, target+"?"+v.Encode(), http.StatusSeeOther)
}

// Index handles GET /, the dashboard.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	summary := h.store.StatusSummary()
	total := h.store.Len()
	end := time.Now().UTC()
	recent := h.store.ByDateRange(end.AddDate(0, 0, -30), end)
	apps := h.store.All()
	h.mu.Unlock()

	sort.SliceStable(recent, func(i, j int) bool { return recent[i].UpdatedAt.After(recent[j].UpdatedAt) })
	if len(recent) > 5 {
		recent = recent[:5]
	}

	h.pages.Render(w, http.StatusOK, "index", struct {
		Flash    flash
		Summary  map[store.Status]int
		Total    int
		Recent   []*store.Application
		Rates    report.ResponseRates
		Statuses []store.Status
	}{flashFrom(r), summary, total, recent, report.New(apps).ResponseRates(), store.AllStatuses()})
}

// applicationsData is the view model for the applications list page.
type applicationsData struct {
	Flash        flash
	Applications []*store.Application
	Companies    []string
	Statuses     []store.Status
	FilterStatus string
	FilterCo     string
	SortBy       string
	Order        string
}

// Applications handles GET /applications with filter and sort parameters.
func (h *Handlers) Applications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sortBy := q.Get("sort")
	if sortBy == "" {
		sortBy = "updated_at"
	}
	order := q.Get("order")
	if order == "" {
		order = "desc"
	}

	var status store.Status
	if tag := q.Get("status"); tag != "" {
		if parsed, err := store.ParseStatus(tag); err == nil {
			status = parsed
		}
	}

	h.mu.Lock()
	apps := h.store.List(store.ListOptions{
		Status:  status,
		Company: q.Get("company"),
		SortBy:  sortBy,
		Reverse: order == "desc",
	})
	all := h.store.All()
	h.mu.Unlock()

	seen := make(map[string]bool)
	var companies []string
	for _, app := range all {
		if !seen[app.Company] {
			seen[app.Company] = true
			companies = append(companies, app.Company)
		}
	}
	sort.Strings(companies)

	h.pages.Render(w, http.StatusOK, "applications", applicationsData{
		Flash:        flashFrom(r),
		Applications: apps,
		Companies:    companies,
		Statuses:     store.AllStatuses(),
		FilterStatus: q.Get("status"),
		FilterCo:     q.Get("company"),
		SortBy:       sortBy,
		Order:        order,
	})
}

// ViewApplication handles GET /application/{id}.
func (h *Handlers) ViewApplication(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	app, ok := h.store.Get(r.PathValue("id"))
	h.mu.Unlock()

	if !ok {
		redirectWithFlash(w, r, "/applications", "Application not found", "error")
		return
	}

	h.pages.Render(w, http.StatusOK, "view_application", struct {
		Flash       flash
		Application *store.Application
	}{flashFrom(r), app})
}

// formData holds the raw add/edit form fields for re-rendering on error.
type formData struct {
	Flash       flash
	Statuses    []store.Status
	Error       string
	Application *store.Application // edit only
	Prefill     store.Input
	FromJob     bool
}

// AddApplicationForm handles GET /add.
func (h *Handlers) AddApplicationForm(w http.ResponseWriter, r *http.Request) {
	h.pages.Render(w, http.StatusOK, "add_application", formData{
		Flash:    flashFrom(r),
		Statuses: store.AllStatuses(),
	})
}

// AddApplication handles POST /add.
func (h *Handlers) AddApplication(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.pages.Render(w, http.StatusBadRequest, "add_application", formData{
			Statuses: store.AllStatuses(),
			Error:    "Invalid form submission",
		})
		return
	}

	in, err := store.ValidateInput(store.RawInput{
		Company:         r.PostFormValue("company"),
		Position:        r.PostFormValue("position"),
		JobURL:          r.PostFormValue("job_url"),
		ContactEmail:    r.PostFormValue("contact_email"),
		SalaryRange:     r.PostFormValue("salary_range"),
		Location:        r.PostFormValue("location"),
		Notes:           r.PostFormValue("notes"),
		ContactPerson:   r.PostFormValue("contact_person"),
		ApplicationDate: r.PostFormValue("application_date"),
	})
	if err == nil {
		in.Status = store.Status(r.PostFormValue("status"))
		if in.Status == "" {
			in.Status = store.StatusApplied
		}
		in.JobPostingID = r.PostFormValue("job_posting_id")
		in.JobPostingSource = r.PostFormValue("job_posting_source")
		in.JobDescription = r.PostFormValue("job_description")
	}

	var app *store.Application
	if err == nil {
		app, err = store.NewApplication(in)
	}
	if err != nil {
		h.pages.Render(w, http.StatusOK, "add_application", formData{
			Statuses: store.AllStatuses(),
			Error:    fmt.Sprintf("Validation error: %v", err),
		})
		return
	}

	h.mu.Lock()
	id, err := h.store.Add(app)
	h.mu.Unlock()
	if err != nil {
		h.logger.Error("failed to persist application", "error", err)
		h.pages.Render(w, http.StatusInternalServerError, "add_application", formData{
			Statuses: store.AllStatuses(),
			Error:    "Error saving application",
		})
		return
	}

	redirectWithFlash(w, r, "/application/"+id,
		fmt.Sprintf("Application added successfully: %s - %s", app.Company, app.Position), "success")
}

// EditApplicationForm handles GET /edit/{id}.
func (h *Handlers) EditApplicationForm(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	app, ok := h.store.Get(r.PathValue("id"))
	h.mu.Unlock()

	if !ok {
		redirectWithFlash(w, r, "/applications", "Application not found", "error")
		return
	}

	h.pages.Render(w, http.StatusOK, "edit_application", formData{
		Flash:       flashFrom(r),
		Statuses:    store.AllStatuses(),
		Application: app,
	})
}

// EditApplication handles POST /edit/{id}.
func (h *Handlers) EditApplication(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	h.mu.Lock()
	app, ok := h.store.Get(id)
	h.mu.Unlock()
	if !ok {
		redirectWithFlash(w, r, "/applications", "Application not found", "error")
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectWithFlash(w, r, "/edit/"+id, "Invalid form submission", "error")
		return
	}

	in, err := store.ValidateInput(store.RawInput{
		Company:       r.PostFormValue("company"),
		Position:      r.PostFormValue("position"),
		JobURL:        r.PostFormValue("job_url"),
		ContactEmail:  r.PostFormValue("contact_email"),
		SalaryRange:   r.PostFormValue("salary_range"),
		Location:      r.PostFormValue("location"),
		Notes:         r.PostFormValue("notes"),
		ContactPerson: r.PostFormValue("contact_person"),
	})
	if err != nil {
		h.pages.Render(w, http.StatusOK, "edit_application", formData{
			Statuses:    store.AllStatuses(),
			Application: app,
			Error:       fmt.Sprintf("Validation error: %v", err),
		})
		return
	}

	status := r.PostFormValue("status")
	upd := store.ApplicationUpdate{
		Company:       &in.Company,
		Position:      &in.Position,
		Status:        &status,
		JobURL:        &in.JobURL,
		SalaryRange:   &in.SalaryRange,
		Location:      &in.Location,
		Notes:         &in.Notes,
		ContactPerson: &in.ContactPerson,
		ContactEmail:  &in.ContactEmail,
	}

	h.mu.Lock()
	ok, err = h.store.Update(id, upd)
	h.mu.Unlock()
	if err != nil || !ok {
		h.logger.Error("failed to update application", "id", id, "error", err)
		redirectWithFlash(w, r, "/edit/"+id, "Failed to update application", "error")
		return
	}

	redirectWithFlash(w, r, "/application/"+id, "Application updated successfully", "success")
}

// DeleteApplication handles POST /delete/{id}.
func (h *Handlers) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	h.mu.Lock()
	app, found := h.store.Get(id)
	var err error
	deleted := false
	if found {
		deleted, err = h.store.Delete(id)
	}
	h.mu.Unlock()

	switch {
	case !found:
		redirectWithFlash(w, r, "/applications", "Application not found", "error")
	case err != nil || !deleted:
		h.logger.Error("failed to delete application", "id", id, "error", err)
		redirectWithFlash(w, r, "/applications", "Failed to delete application", "error")
	default:
		redirectWithFlash(w, r, "/applications",
			fmt.Sprintf("Application deleted: %s - %s", app.Company, app.Position), "success")
	}
}

// SearchPage handles GET /search.
func (h *Handlers) SearchPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var results []*store.Application
	if query != "" {
		h.mu.Lock()
		results = h.store.Search(query)
		h.mu.Unlock()
	}

	h.pages.Render(w, http.StatusOK, "search", struct {
		Flash   flash
		Query   string
		Results []*store.Application
	}{flashFrom(r), query, results})
}

// companyView augments a company aggregate with a response rate and positions.
type companyView struct {
	Company         string
	Count           int
	ResponseRate    float64
	StatusBreakdown map[store.Status]int
	Positions       []string
}

// weekView is the per-week row of the analytics page.
type weekView struct {
	Total        int
	Responses    int
	ResponseRate float64
}

// Analytics handles GET /analytics.
func (h *Handlers) Analytics(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	apps := h.store.All()
	h.mu.Unlock()

	rep := report.New(apps)
	rates := rep.ResponseRates()

	stats := rep.CompanyStatistics()
	if len(stats) > 10 {
		stats = stats[:10]
	}
	companies := make([]companyView, 0, len(stats))
	for _, cs := range stats {
		responded := cs.Count - cs.StatusBreakdown[store.StatusApplied]
		var positions []string
		for _, app := range apps {
			if app.Company == cs.Company {
				positions = append(positions, app.Position)
			}
		}
		companies = append(companies, companyView{
			Company:         cs.Company,
			Count:           cs.Count,
			ResponseRate:    float64(responded) / float64(cs.Count) * 100,
			StatusBreakdown: cs.StatusBreakdown,
			Positions:       positions,
		})
	}

	weekly := make(map[string]weekView)
	for key, bucket := range rep.WeeklySummary(8).Buckets {
		responded := bucket.ApplicationsCount - bucket.StatusBreakdown[store.StatusApplied]
		weekly[key] = weekView{
			Total:        bucket.ApplicationsCount,
			Responses:    responded,
			ResponseRate: float64(responded) / float64(bucket.ApplicationsCount) * 100,
		}
	}

	h.pages.Render(w, http.StatusOK, "analytics", struct {
		Flash     flash
		Rates     report.ResponseRates
		Companies []companyView
		Weekly    map[string]weekView
		Stale     []*store.Application
	}{flashFrom(r), rates, companies, weekly, rep.StaleApplications(30)})
}

// Export handles GET /export, serving the collection as a JSON download.
func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	apps := h.store.All()
	h.mu.Unlock()

	filename := fmt.Sprintf("applications_export_%s.json", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	if apps == nil {
		apps = []*store.Application{}
	}
	h.respondJson(w, http.StatusOK, apps)
}

// NotFound renders the 404 page for unmatched routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.pages.Render(w, http.StatusNotFound, "404", struct{ Flash flash }{})
}
