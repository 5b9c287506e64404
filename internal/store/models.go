// Package store contains the application records and the persistence layer for apptrack.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status represents the state of a job application.
type Status string

const (
	StatusApplied            Status = "applied"
	StatusScreening          Status = "screening"
	StatusInterviewScheduled Status = "interview_scheduled"
	StatusInterviewed        Status = "interviewed"
	StatusOfferReceived      Status = "offer_received"
	StatusRejected           Status = "rejected"
	StatusWithdrawn          Status = "withdrawn"
	StatusAccepted           Status = "accepted"
)

// AllStatuses returns every status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		StatusApplied,
		StatusScreening,
		StatusInterviewScheduled,
		StatusInterviewed,
		StatusOfferReceived,
		StatusRejected,
		StatusWithdrawn,
		StatusAccepted,
	}
}

// ParseStatus converts a string tag into a Status.
func ParseStatus(s string) (Status, error) {
	for _, status := range AllStatuses() {
		if Status(s) == status {
			return status, nil
		}
	}
	return "", &ValidationError{Message: fmt.Sprintf("unknown status %q", s)}
}

// Terminal reports whether the status ends the application lifecycle.
// Terminal applications are excluded from staleness checks.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusAccepted || s == StatusWithdrawn
}

// ValidationError is returned when input data is rejected.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Application represents a single tracked job application.
// Optional string fields use "" as absent; they serialize to null.
type Application struct {
	ID              string
	Company         string
	Position        string
	Status          Status
	ApplicationDate time.Time
	JobURL          string
	SalaryRange     string
	Location        string
	Notes           string
	ContactPerson   string
	ContactEmail    string

	// Provenance fields, populated when the record came from a job search result.
	JobPostingID     string
	JobPostingSource string
	JobDescription   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Input carries the raw fields for constructing a new Application.
type Input struct {
	Company          string
	Position         string
	Status           Status
	ApplicationDate  time.Time
	JobURL           string
	SalaryRange      string
	Location         string
	Notes            string
	ContactPerson    string
	ContactEmail     string
	JobPostingID     string
	JobPostingSource string
	JobDescription   string
}

// NewApplication validates the input and builds a fully-initialized record
// with a fresh id and created_at == updated_at == now.
func NewApplication(in Input) (*Application, error) {
	company, err := ValidateCompany(in.Company)
	if err != nil {
		return nil, err
	}
	position, err := ValidatePosition(in.Position)
	if err != nil {
		return nil, err
	}
	jobURL, err := ValidateURL(in.JobURL)
	if err != nil {
		return nil, err
	}
	email, err := ValidateEmail(in.ContactEmail)
	if err != nil {
		return nil, err
	}
	salary, err := ValidateSalaryRange(in.SalaryRange)
	if err != nil {
		return nil, err
	}
	location, err := ValidateLocation(in.Location)
	if err != nil {
		return nil, err
	}
	notes, err := ValidateNotes(in.Notes)
	if err != nil {
		return nil, err
	}
	contact, err := ValidateContactName(in.ContactPerson)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = StatusApplied
	} else if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	appDate := in.ApplicationDate
	if appDate.IsZero() {
		appDate = now
	}

	source := in.JobPostingSource
	if source == "" {
		source = "Manual"
	}

	return &Application{
		ID:               uuid.New().String(),
		Company:          company,
		Position:         position,
		Status:           status,
		ApplicationDate:  appDate,
		JobURL:           jobURL,
		SalaryRange:      salary,
		Location:         location,
		Notes:            notes,
		ContactPerson:    contact,
		ContactEmail:     email,
		JobPostingID:     in.JobPostingID,
		JobPostingSource: source,
		JobDescription:   in.JobDescription,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// UpdateStatus sets a new status and refreshes updated_at. A non-empty note
// is appended to the existing notes as a timestamped line, never overwriting.
func (a *Application) UpdateStatus(status Status, note string) {
	now := time.Now().UTC()
	a.Status = status
	a.UpdatedAt = now
	if note != "" {
		line := fmt.Sprintf("[%s] %s", now.Format("2006-01-02 15:04"), note)
		if a.Notes != "" {
			a.Notes += "\n" + line
		} else {
			a.Notes = line
		}
	}
}

func (a *Application) String() string {
	return fmt.Sprintf("%s - %s (%s)", a.Company, a.Position, a.Status)
}

// record is the flat on-disk shape of an Application. All timestamps are
// RFC 3339 strings and absent optional fields are null.
type record struct {
	ID               string  `json:"id"`
	Company          string  `json:"company"`
	Position         string  `json:"position"`
	Status           string  `json:"status"`
	ApplicationDate  *string `json:"application_date"`
	JobURL           *string `json:"job_url"`
	SalaryRange      *string `json:"salary_range"`
	Location         *string `json:"location"`
	Notes            *string `json:"notes"`
	ContactPerson    *string `json:"contact_person"`
	ContactEmail     *string `json:"contact_email"`
	JobPostingID     *string `json:"job_posting_id"`
	JobPostingSource *string `json:"job_posting_source"`
	JobDescription   *string `json:"job_description"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fromOpt(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// MarshalJSON renders the application as a flat record.
func (a *Application) MarshalJSON() ([]byte, error) {
	rec := record{
		ID:               a.ID,
		Company:          a.Company,
		Position:         a.Position,
		Status:           string(a.Status),
		JobURL:           optString(a.JobURL),
		SalaryRange:      optString(a.SalaryRange),
		Location:         optString(a.Location),
		Notes:            optString(a.Notes),
		ContactPerson:    optString(a.ContactPerson),
		ContactEmail:     optString(a.ContactEmail),
		JobPostingID:     optString(a.JobPostingID),
		JobPostingSource: optString(a.JobPostingSource),
		JobDescription:   optString(a.JobDescription),
		CreatedAt:        a.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:        a.UpdatedAt.Format(time.RFC3339Nano),
	}
	if !a.ApplicationDate.IsZero() {
		date := a.ApplicationDate.Format(time.RFC3339Nano)
		rec.ApplicationDate = &date
	}
	return json.Marshal(rec)
}

// UnmarshalJSON restores an application from its flat record. It fails with
// a ValidationError when id, company or position are missing or the status
// tag is not recognized.
func (a *Application) UnmarshalJSON(data []byte) error {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	if rec.ID == "" {
		return &ValidationError{Message: "application record is missing id"}
	}
	if rec.Company == "" {
		return &ValidationError{Message: "application record is missing company"}
	}
	if rec.Position == "" {
		return &ValidationError{Message: "application record is missing position"}
	}
	status, err := ParseStatus(rec.Status)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	createdAt, err := parseTimestamp(rec.CreatedAt, now)
	if err != nil {
		return err
	}
	updatedAt, err := parseTimestamp(rec.UpdatedAt, now)
	if err != nil {
		return err
	}

	var appDate time.Time
	if rec.ApplicationDate != nil {
		appDate, err = parseTimestamp(*rec.ApplicationDate, time.Time{})
		if err != nil {
			return err
		}
	}

	*a = Application{
		ID:               rec.ID,
		Company:          rec.Company,
		Position:         rec.Position,
		Status:           status,
		ApplicationDate:  appDate,
		JobURL:           fromOpt(rec.JobURL),
		SalaryRange:      fromOpt(rec.SalaryRange),
		Location:         fromOpt(rec.Location),
		Notes:            fromOpt(rec.Notes),
		ContactPerson:    fromOpt(rec.ContactPerson),
		ContactEmail:     fromOpt(rec.ContactEmail),
		JobPostingID:     fromOpt(rec.JobPostingID),
		JobPostingSource: fromOpt(rec.JobPostingSource),
		JobDescription:   fromOpt(rec.JobDescription),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	return nil
}

func parseTimestamp(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, &ValidationError{Message: fmt.Sprintf("invalid timestamp %q", s)}
	}
	return t, nil
}
