package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultAdzunaURL = "https://api.adzuna.com/v1/api"

// Adzuna searches the Adzuna API (free tier). Requests need an app id and
// api key; the country segment is fixed to "us".
type Adzuna struct {
	BaseURL    string
	AppID      string
	APIKey     string
	HTTPClient *http.Client
}

// NewAdzuna creates an Adzuna provider with the given credentials.
func NewAdzuna(appID, apiKey string) *Adzuna {
	return &Adzuna{
		BaseURL:    defaultAdzunaURL,
		AppID:      appID,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *Adzuna) Name() string { return "Adzuna" }

// Search queries the country-specific Adzuna search endpoint.
func (p *Adzuna) Search(ctx context.Context, query, location string, limit int) ([]Listing, error) {
	if p.AppID == "" || p.APIKey == "" {
		return nil, fmt.Errorf("adzuna credentials are not configured")
	}

	params := url.Values{}
	params.Set("app_id", p.AppID)
	params.Set("app_key", p.APIKey)
	params.Set("results_per_page", strconv.Itoa(min(limit, 50)))
	params.Set("what", query)
	if location != "" {
		params.Set("where", location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/jobs/us/search/1?%s", p.BaseURL, params.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adzuna request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("adzuna returned status %d", resp.StatusCode)
	}

	var body struct {
		Results []adzunaJob `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to parse adzuna response: %w", err)
	}

	var listings []Listing
	for _, job := range body.Results {
		listings = append(listings, job.toListing())
	}
	return listings, nil
}

// Details is not supported; Adzuna has no job details endpoint and its
// search results already carry full information.
func (p *Adzuna) Details(ctx context.Context, jobID string) (*Listing, error) {
	return nil, nil
}

type adzunaJob struct {
	ID           json.Number `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	RedirectURL  string      `json:"redirect_url"`
	SalaryMin    *float64    `json:"salary_min"`
	SalaryMax    *float64    `json:"salary_max"`
	ContractType string      `json:"contract_type"`
	Created      string      `json:"created"`
	Company      struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
}

func (j adzunaJob) toListing() Listing {
	var postedDate *time.Time
	if j.Created != "" {
		if t, err := time.Parse(time.RFC3339, j.Created); err == nil {
			postedDate = &t
		}
	}

	company := j.Company.DisplayName
	if company == "" {
		company = "Unknown Company"
	}

	return Listing{
		JobID:          j.ID.String(),
		Title:          j.Title,
		Company:        company,
		Location:       j.Location.DisplayName,
		Description:    j.Description,
		JobURL:         j.RedirectURL,
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		SalaryCurrency: "USD",
		EmploymentType: j.ContractType,
		PostedDate:     postedDate,
		Source:         "Adzuna",
		Requirements:   []string{},
		Benefits:       []string{},
	}
}
