package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultJSearchURL = "https://jsearch.p.rapidapi.com"

// JSearch searches the JSearch API on RapidAPI (paid).
type JSearch struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewJSearch creates a JSearch provider with the given RapidAPI key.
func NewJSearch(apiKey string) *JSearch {
	return &JSearch{
		BaseURL:    defaultJSearchURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *JSearch) Name() string { return "JSearch" }

func (p *JSearch) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s%s?%s", p.BaseURL, path, params.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", p.APIKey)
	req.Header.Set("X-RapidAPI-Host", "jsearch.p.rapidapi.com")

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jsearch request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("jsearch returned status %d", resp.StatusCode)
	}
	return resp, nil
}

// Search queries the JSearch search endpoint. The location is folded into
// the query string, which is how JSearch expects it.
func (p *JSearch) Search(ctx context.Context, query, location string, limit int) ([]Listing, error) {
	if p.APIKey == "" {
		return nil, fmt.Errorf("jsearch api key is not configured")
	}

	search := query
	if location != "" {
		search += " in " + location
	}
	params := url.Values{}
	params.Set("query", search)
	params.Set("page", "1")
	params.Set("num_pages", "1")
	params.Set("date_posted", "all")

	resp, err := p.get(ctx, "/search", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body struct {
		Data []jsearchJob `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to parse jsearch response: %w", err)
	}

	jobs := body.Data
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	var listings []Listing
	for _, job := range jobs {
		listings = append(listings, job.toListing())
	}
	return listings, nil
}

// Details looks up a single posting on the job-details endpoint.
func (p *JSearch) Details(ctx context.Context, jobID string) (*Listing, error) {
	if p.APIKey == "" {
		return nil, fmt.Errorf("jsearch api key is not configured")
	}

	params := url.Values{}
	params.Set("job_id", jobID)

	resp, err := p.get(ctx, "/job-details", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body struct {
		Data []jsearchJob `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to parse jsearch response: %w", err)
	}
	if len(body.Data) == 0 {
		return nil, nil
	}
	listing := body.Data[0].toListing()
	return &listing, nil
}

type jsearchJob struct {
	JobID             string   `json:"job_id"`
	JobTitle          string   `json:"job_title"`
	EmployerName      string   `json:"employer_name"`
	JobCity           string   `json:"job_city"`
	JobState          string   `json:"job_state"`
	JobCountry        string   `json:"job_country"`
	JobDescription    string   `json:"job_description"`
	JobApplyLink      string   `json:"job_apply_link"`
	JobMinSalary      *float64 `json:"job_min_salary"`
	JobMaxSalary      *float64 `json:"job_max_salary"`
	JobSalaryCurrency string   `json:"job_salary_currency"`
	JobSalaryPeriod   string   `json:"job_salary_period"`
	JobEmploymentType string   `json:"job_employment_type"`
	JobIsRemote       bool     `json:"job_is_remote"`
	JobPostedAtUTC    string   `json:"job_posted_at_datetime_utc"`
}

func (j jsearchJob) toListing() Listing {
	var salaryMin, salaryMax *float64
	currency := ""
	if j.JobSalaryPeriod != "" {
		salaryMin = j.JobMinSalary
		salaryMax = j.JobMaxSalary
		currency = j.JobSalaryCurrency
		if currency == "" {
			currency = "USD"
		}
	}

	var postedDate *time.Time
	if j.JobPostedAtUTC != "" {
		if t, err := time.Parse(time.RFC3339, j.JobPostedAtUTC); err == nil {
			postedDate = &t
		}
	}

	// Crude signal extraction; the full text stays in the description.
	var requirements, benefits []string
	lower := strings.ToLower(j.JobDescription)
	if strings.Contains(lower, "requirements") {
		requirements = []string{"See job description for detailed requirements"}
	}
	if strings.Contains(lower, "benefits") {
		benefits = []string{"See job description for detailed benefits"}
	}

	var locParts []string
	for _, part := range []string{j.JobCity, j.JobState, j.JobCountry} {
		if part != "" {
			locParts = append(locParts, part)
		}
	}
	location := strings.Join(locParts, ", ")

	return Listing{
		JobID:          j.JobID,
		Title:          j.JobTitle,
		Company:        j.EmployerName,
		Location:       location,
		Description:    j.JobDescription,
		JobURL:         j.JobApplyLink,
		SalaryMin:      salaryMin,
		SalaryMax:      salaryMax,
		SalaryCurrency: currency,
		EmploymentType: j.JobEmploymentType,
		Remote:         j.JobIsRemote,
		PostedDate:     postedDate,
		Source:         "JSearch",
		Requirements:   requirements,
		Benefits:       benefits,
	}
}
