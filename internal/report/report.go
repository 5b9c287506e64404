// Package report provides read-only analytics over a snapshot of application records.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"apptrack/internal/store"
)

// Reporter computes derived statistics over a snapshot slice. It is not
// live-coupled to the store; build a new one for an up-to-date view.
type Reporter struct {
	apps []*store.Application
}

// New creates a reporter over the given snapshot.
func New(apps []*store.Application) *Reporter {
	return &Reporter{apps: apps}
}

// ResponseRates holds conversion metrics, each as a percentage of the total.
type ResponseRates struct {
	TotalApplications int     `json:"total_applications"`
	ResponseRate      float64 `json:"response_rate"`
	InterviewRate     float64 `json:"interview_rate"`
	OfferRate         float64 `json:"offer_rate"`
	AcceptanceRate    float64 `json:"acceptance_rate"`
	RejectionRate     float64 `json:"rejection_rate"`
}

// ResponseRates analyzes response and conversion rates. An empty snapshot
// yields an all-zero result rather than a division fault.
func (r *Reporter) ResponseRates() ResponseRates {
	total := len(r.apps)
	if total == 0 {
		return ResponseRates{}
	}

	var applied, interviewed, offers, rejected, accepted int
	for _, app := range r.apps {
		switch app.Status {
		case store.StatusApplied:
			applied++
		case store.StatusInterviewScheduled, store.StatusInterviewed:
			interviewed++
		case store.StatusOfferReceived:
			offers++
		case store.StatusRejected:
			rejected++
		case store.StatusAccepted:
			accepted++
		}
	}

	pct := func(n int) float64 { return float64(n) / float64(total) * 100 }
	return ResponseRates{
		TotalApplications: total,
		ResponseRate:      pct(total - applied),
		InterviewRate:     pct(interviewed),
		OfferRate:         pct(offers),
		AcceptanceRate:    pct(accepted),
		RejectionRate:     pct(rejected),
	}
}

// CompanyStat is the aggregate for a single company.
type CompanyStat struct {
	Company         string               `json:"company"`
	Count           int                  `json:"count"`
	StatusBreakdown map[store.Status]int `json:"status_breakdown"`
}

// CompanyStatistics groups applications by company, sorted by count
// descending. Ties keep the order companies were first seen in.
func (r *Reporter) CompanyStatistics() []CompanyStat {
	index := make(map[string]int)
	var stats []CompanyStat
	for _, app := range r.apps {
		i, ok := index[app.Company]
		if !ok {
			i = len(stats)
			index[app.Company] = i
			stats = append(stats, CompanyStat{
				Company:         app.Company,
				StatusBreakdown: make(map[store.Status]int),
			})
		}
		stats[i].Count++
		stats[i].StatusBreakdown[app.Status]++
	}

	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Count > stats[j].Count })
	return stats
}

// StaleApplications returns non-terminal applications not updated within the
// threshold, oldest first.
func (r *Reporter) StaleApplications(days int) []*store.Application {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	var stale []*store.Application
	for _, app := range r.apps {
		if app.UpdatedAt.Before(cutoff) && !app.Status.Terminal() {
			stale = append(stale, app)
		}
	}

	sort.SliceStable(stale, func(i, j int) bool { return stale[i].UpdatedAt.Before(stale[j].UpdatedAt) })
	return stale
}

// PeriodStats is the aggregate for one weekly or monthly bucket.
type PeriodStats struct {
	ApplicationsCount int                  `json:"applications_count"`
	Companies         []string             `json:"companies"`
	StatusBreakdown   map[store.Status]int `json:"status_breakdown"`
	TopCompanies      []string             `json:"top_companies,omitempty"`
}

// ActivitySummary buckets application activity over a trailing window.
// Unit names the bucket size ("week" or "month"); Period is the date range.
type ActivitySummary struct {
	Unit              string                 `json:"unit"`
	Period            string                 `json:"period"`
	TotalApplications int                    `json:"total_applications"`
	Buckets           map[string]PeriodStats `json:"buckets"`
	AveragePerPeriod  float64                `json:"average_per_period"`
}

// WeeklySummary buckets the trailing window into weeks starting on Monday,
// keyed by the week-start date.
func (r *Reporter) WeeklySummary(weeks int) ActivitySummary {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -7*weeks)

	relevant := r.between(start, end)
	buckets := bucketBy(relevant, func(app *store.Application) string {
		return weekStart(app.ApplicationDate).Format("2006-01-02")
	})

	avg := 0.0
	if weeks > 0 {
		avg = float64(len(relevant)) / float64(weeks)
	}
	return ActivitySummary{
		Unit:              "week",
		Period:            fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02")),
		TotalApplications: len(relevant),
		Buckets:           buckets,
		AveragePerPeriod:  avg,
	}
}

// MonthlyTrends buckets the trailing window into calendar months, keyed by
// YYYY-MM, with the top three companies per month.
func (r *Reporter) MonthlyTrends(months int) ActivitySummary {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -30*months)

	relevant := r.between(start, end)
	buckets := bucketBy(relevant, func(app *store.Application) string {
		return app.ApplicationDate.Format("2006-01")
	})
	for key, stats := range buckets {
		stats.TopCompanies = topCompanies(stats.Companies, relevant, key, 3)
		buckets[key] = stats
	}

	avg := 0.0
	if months > 0 {
		avg = float64(len(relevant)) / float64(months)
	}
	return ActivitySummary{
		Unit:              "month",
		Period:            fmt.Sprintf("%s to %s", start.Format("2006-01"), end.Format("2006-01")),
		TotalApplications: len(relevant),
		Buckets:           buckets,
		AveragePerPeriod:  avg,
	}
}

func (r *Reporter) between(start, end time.Time) []*store.Application {
	var relevant []*store.Application
	for _, app := range r.apps {
		d := app.ApplicationDate
		if d.IsZero() || d.Before(start) || d.After(end) {
			continue
		}
		relevant = append(relevant, app)
	}
	return relevant
}

func bucketBy(apps []*store.Application, key func(*store.Application) string) map[string]PeriodStats {
	buckets := make(map[string]PeriodStats)
	for _, app := range apps {
		k := key(app)
		stats, ok := buckets[k]
		if !ok {
			stats = PeriodStats{StatusBreakdown: make(map[store.Status]int)}
		}
		stats.ApplicationsCount++
		if !contains(stats.Companies, app.Company) {
			stats.Companies = append(stats.Companies, app.Company)
		}
		stats.StatusBreakdown[app.Status]++
		buckets[k] = stats
	}
	return buckets
}

func topCompanies(companies []string, apps []*store.Application, monthKey string, n int) []string {
	counts := make(map[string]int)
	for _, app := range apps {
		if app.ApplicationDate.Format("2006-01") == monthKey {
			counts[app.Company]++
		}
	}

	top := append([]string(nil), companies...)
	sort.SliceStable(top, func(i, j int) bool { return counts[top[i]] > counts[top[j]] })
	if len(top) > n {
		top = top[:n]
	}
	return top
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// weekStart returns midnight of the Monday of t's week.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// TimelineEvent is one reconstructed lifecycle event.
type TimelineEvent struct {
	Date    time.Time    `json:"date"`
	Event   string       `json:"event"`
	Status  store.Status `json:"status"`
	Details string       `json:"details"`
}

// Timeline is the ordered event history of a single application.
type Timeline struct {
	Application  *store.Application `json:"application"`
	Events       []TimelineEvent    `json:"events"`
	DurationDays int                `json:"duration_days"`
}

// Timeline reconstructs the lifecycle events of the application with the
// given id, sorted by event date. It returns nil when the id is unknown.
func (r *Reporter) Timeline(id string) *Timeline {
	var app *store.Application
	for _, a := range r.apps {
		if a.ID == id {
			app = a
			break
		}
	}
	if app == nil {
		return nil
	}

	events := []TimelineEvent{{
		Date:    app.CreatedAt,
		Event:   "Application Created",
		Status:  app.Status,
		Details: fmt.Sprintf("Applied to %s for %s", app.Company, app.Position),
	}}

	if !app.ApplicationDate.IsZero() && !app.ApplicationDate.Equal(app.CreatedAt) {
		events = append(events, TimelineEvent{
			Date:    app.ApplicationDate,
			Event:   "Application Submitted",
			Status:  store.StatusApplied,
			Details: fmt.Sprintf("Submitted application to %s", app.Company),
		})
	}

	if !app.UpdatedAt.Equal(app.CreatedAt) {
		events = append(events, TimelineEvent{
			Date:    app.UpdatedAt,
			Event:   "Status Updated",
			Status:  app.Status,
			Details: fmt.Sprintf("Status changed to %s", app.Status),
		})
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return &Timeline{
		Application:  app,
		Events:       events,
		DurationDays: int(time.Since(app.CreatedAt).Hours() / 24),
	}
}

// SummaryReport renders a plain-text overview of the whole snapshot.
func (r *Reporter) SummaryReport() string {
	if len(r.apps) == 0 {
		return "No applications found."
	}

	var b strings.Builder
	total := len(r.apps)

	b.WriteString("APPLICATION TRACKER SUMMARY REPORT\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total Applications: %d\n\n", total)

	counts := make(map[store.Status]int)
	for _, app := range r.apps {
		counts[app.Status]++
	}
	b.WriteString("Status Breakdown:\n")
	for _, status := range store.AllStatuses() {
		count := counts[status]
		pct := float64(count) / float64(total) * 100
		fmt.Fprintf(&b, "  %s: %d (%.1f%%)\n", statusTitle(status), count, pct)
	}

	rates := r.ResponseRates()
	b.WriteString("\nResponse Rate Analysis:\n")
	fmt.Fprintf(&b, "  Response Rate: %.1f%%\n", rates.ResponseRate)
	fmt.Fprintf(&b, "  Interview Rate: %.1f%%\n", rates.InterviewRate)
	fmt.Fprintf(&b, "  Offer Rate: %.1f%%\n", rates.OfferRate)

	stats := r.CompanyStatistics()
	if len(stats) > 5 {
		stats = stats[:5]
	}
	b.WriteString("\nTop Companies (by application count):\n")
	for _, cs := range stats {
		fmt.Fprintf(&b, "  %s: %d applications\n", cs.Company, cs.Count)
	}

	recent := 0
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	for _, app := range r.apps {
		if app.CreatedAt.After(weekAgo) {
			recent++
		}
	}
	fmt.Fprintf(&b, "\nRecent Activity (last 7 days): %d applications\n", recent)
	fmt.Fprintf(&b, "Stale Applications (>30 days): %d applications\n", len(r.StaleApplications(30)))

	return b.String()
}

func statusTitle(s store.Status) string {
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
