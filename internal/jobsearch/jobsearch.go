// Package jobsearch integrates external job posting APIs used to pre-fill
// the add-application form. Providers share one interface and the service
// falls back across them, ending with mock sample data.
package jobsearch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"apptrack/internal/store"
)

// Listing is a job posting fetched from an external search API. It is
// distinct from a tracked application record.
type Listing struct {
	JobID          string     `json:"job_id"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Location       string     `json:"location"`
	Description    string     `json:"description"`
	JobURL         string     `json:"job_url"`
	SalaryMin      *float64   `json:"salary_min"`
	SalaryMax      *float64   `json:"salary_max"`
	SalaryCurrency string     `json:"salary_currency,omitempty"`
	EmploymentType string     `json:"employment_type,omitempty"`
	Remote         bool       `json:"remote"`
	PostedDate     *time.Time `json:"posted_date"`
	Source         string     `json:"source"`
	Requirements   []string   `json:"requirements"`
	Benefits       []string   `json:"benefits"`
}

// SalaryRange formats the salary bounds as a display string, or "" when the
// listing carries no salary information.
func (l *Listing) SalaryRange() string {
	currency := l.SalaryCurrency
	if currency == "" {
		currency = "USD"
	}
	switch {
	case l.SalaryMin != nil && l.SalaryMax != nil:
		return fmt.Sprintf("$%.0f - $%.0f %s", *l.SalaryMin, *l.SalaryMax, currency)
	case l.SalaryMin != nil:
		return fmt.Sprintf("$%.0f+ %s", *l.SalaryMin, currency)
	default:
		return ""
	}
}

// Provider is a single job search API backend.
type Provider interface {
	// Name identifies the provider in logs and status reports.
	Name() string

	// Search returns up to limit listings for the query. A failed request
	// returns an error; an empty result is not an error.
	Search(ctx context.Context, query, location string, limit int) ([]Listing, error)

	// Details returns one listing by id, or nil when the provider cannot
	// look up individual postings.
	Details(ctx context.Context, jobID string) (*Listing, error)
}

// ApplicationInput converts a listing into pre-filled fields for the
// add-application form.
func ApplicationInput(l *Listing) store.Input {
	requirements := strings.Join(l.Requirements, ", ")
	if requirements == "" {
		requirements = "See job description"
	}
	benefits := strings.Join(l.Benefits, ", ")
	if benefits == "" {
		benefits = "See job description"
	}
	employment := l.EmploymentType
	if employment == "" {
		employment = "Not specified"
	}

	notes := fmt.Sprintf("Applied via job posting API\nSource: %s\nJob ID: %s\nEmployment Type: %s\n\nRequirements: %s\n\nBenefits: %s",
		l.Source, l.JobID, employment, requirements, benefits)

	return store.Input{
		Company:          l.Company,
		Position:         l.Title,
		JobURL:           l.JobURL,
		SalaryRange:      l.SalaryRange(),
		Location:         l.Location,
		Notes:            notes,
		JobPostingID:     l.JobID,
		JobPostingSource: l.Source,
		JobDescription:   l.Description,
	}
}
