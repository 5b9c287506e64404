// Package api defines the request and response payloads of the apptrack JSON API.
package api

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// SuccessResponse acknowledges a mutation without a body of its own.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// AddApplicationRequest creates a new application record.
type AddApplicationRequest struct {
	Company          string `json:"company"`
	Position         string `json:"position"`
	Status           string `json:"status,omitempty"`
	ApplicationDate  string `json:"application_date,omitempty"`
	JobURL           string `json:"job_url,omitempty"`
	SalaryRange      string `json:"salary_range,omitempty"`
	Location         string `json:"location,omitempty"`
	Notes            string `json:"notes,omitempty"`
	ContactPerson    string `json:"contact_person,omitempty"`
	ContactEmail     string `json:"contact_email,omitempty"`
	JobPostingID     string `json:"job_posting_id,omitempty"`
	JobPostingSource string `json:"job_posting_source,omitempty"`
	JobDescription   string `json:"job_description,omitempty"`
}

// AddApplicationResponse returns the id of the created record.
type AddApplicationResponse struct {
	Success       bool   `json:"success"`
	ApplicationID string `json:"application_id"`
}

// UpdateApplicationRequest carries a partial update; absent fields are left
// untouched.
type UpdateApplicationRequest struct {
	Company       *string `json:"company,omitempty"`
	Position      *string `json:"position,omitempty"`
	Status        *string `json:"status,omitempty"`
	JobURL        *string `json:"job_url,omitempty"`
	SalaryRange   *string `json:"salary_range,omitempty"`
	Location      *string `json:"location,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	ContactEmail  *string `json:"contact_email,omitempty"`
}
