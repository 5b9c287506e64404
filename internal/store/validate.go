package store

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	maxCompanyLen  = 100
	maxPositionLen = 100
	maxNotesLen    = 2000
	maxSalaryLen   = 50
	maxLocationLen = 100
	maxContactLen  = 100
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateCompany trims and checks a required company name.
func ValidateCompany(company string) (string, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return "", &ValidationError{Message: "company name cannot be empty"}
	}
	if len(company) > maxCompanyLen {
		return "", &ValidationError{Message: fmt.Sprintf("company name cannot exceed %d characters", maxCompanyLen)}
	}
	return company, nil
}

// ValidatePosition trims and checks a required position title.
func ValidatePosition(position string) (string, error) {
	position = strings.TrimSpace(position)
	if position == "" {
		return "", &ValidationError{Message: "position title cannot be empty"}
	}
	if len(position) > maxPositionLen {
		return "", &ValidationError{Message: fmt.Sprintf("position title cannot exceed %d characters", maxPositionLen)}
	}
	return position, nil
}

// ValidateEmail checks an optional contact email. The normalized value is lowercased.
func ValidateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", nil
	}
	if !emailPattern.MatchString(email) {
		return "", &ValidationError{Message: fmt.Sprintf("invalid email format: %q", email)}
	}
	return strings.ToLower(email), nil
}

// ValidateURL checks an optional job posting URL. It must parse with both a
// scheme and a host.
func ValidateURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", &ValidationError{Message: fmt.Sprintf("invalid URL format: %q", raw)}
	}
	return raw, nil
}

// ValidateDate parses an optional YYYY-MM-DD date string.
func ValidateDate(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, &ValidationError{Message: fmt.Sprintf("invalid date format %q, use YYYY-MM-DD", date)}
	}
	return t, nil
}

// ValidateNotes trims optional notes; empty is treated as absent.
func ValidateNotes(notes string) (string, error) {
	notes = strings.TrimSpace(notes)
	if len(notes) > maxNotesLen {
		return "", &ValidationError{Message: fmt.Sprintf("notes cannot exceed %d characters", maxNotesLen)}
	}
	return notes, nil
}

// ValidateSalaryRange trims an optional salary range.
func ValidateSalaryRange(salary string) (string, error) {
	salary = strings.TrimSpace(salary)
	if len(salary) > maxSalaryLen {
		return "", &ValidationError{Message: fmt.Sprintf("salary range cannot exceed %d characters", maxSalaryLen)}
	}
	return salary, nil
}

// ValidateLocation trims an optional location.
func ValidateLocation(location string) (string, error) {
	location = strings.TrimSpace(location)
	if len(location) > maxLocationLen {
		return "", &ValidationError{Message: fmt.Sprintf("location cannot exceed %d characters", maxLocationLen)}
	}
	return location, nil
}

// ValidateContactName trims an optional contact person name.
func ValidateContactName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) > maxContactLen {
		return "", &ValidationError{Message: fmt.Sprintf("contact name cannot exceed %d characters", maxContactLen)}
	}
	return name, nil
}

// RawInput holds unvalidated form or argument fields.
type RawInput struct {
	Company         string
	Position        string
	JobURL          string
	ContactEmail    string
	SalaryRange     string
	Location        string
	Notes           string
	ContactPerson   string
	ApplicationDate string
}

// ValidateInput validates all raw fields at once and returns the normalized
// construction input, failing fast on the first invalid field.
func ValidateInput(raw RawInput) (Input, error) {
	company, err := ValidateCompany(raw.Company)
	if err != nil {
		return Input{}, err
	}
	position, err := ValidatePosition(raw.Position)
	if err != nil {
		return Input{}, err
	}
	jobURL, err := ValidateURL(raw.JobURL)
	if err != nil {
		return Input{}, err
	}
	email, err := ValidateEmail(raw.ContactEmail)
	if err != nil {
		return Input{}, err
	}
	salary, err := ValidateSalaryRange(raw.SalaryRange)
	if err != nil {
		return Input{}, err
	}
	location, err := ValidateLocation(raw.Location)
	if err != nil {
		return Input{}, err
	}
	notes, err := ValidateNotes(raw.Notes)
	if err != nil {
		return Input{}, err
	}
	contact, err := ValidateContactName(raw.ContactPerson)
	if err != nil {
		return Input{}, err
	}
	appDate, err := ValidateDate(raw.ApplicationDate)
	if err != nil {
		return Input{}, err
	}

	return Input{
		Company:         company,
		Position:        position,
		JobURL:          jobURL,
		ContactEmail:    email,
		SalaryRange:     salary,
		Location:        location,
		Notes:           notes,
		ContactPerson:   contact,
		ApplicationDate: appDate,
	}, nil
}
