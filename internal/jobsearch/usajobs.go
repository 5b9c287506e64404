package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultUSAJobsURL = "https://data.usajobs.gov/api"

// USAJobs searches the USAJobs.gov API. It is free and only needs a contact
// email in the User-Agent header.
type USAJobs struct {
	BaseURL    string
	Email      string
	HTTPClient *http.Client
}

// NewUSAJobs creates a USAJobs.gov provider.
func NewUSAJobs(email string) *USAJobs {
	if email == "" {
		email = "apptrack@example.com"
	}
	return &USAJobs{
		BaseURL:    defaultUSAJobsURL,
		Email:      email,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *USAJobs) Name() string { return "USAJobs.gov" }

// Search queries the USAJobs search endpoint.
func (p *USAJobs) Search(ctx context.Context, query, location string, limit int) ([]Listing, error) {
	params := url.Values{}
	params.Set("Keyword", query)
	params.Set("ResultsPerPage", strconv.Itoa(min(limit, 500)))
	params.Set("Page", "1")
	if location != "" {
		params.Set("LocationName", location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/search?%s", p.BaseURL, params.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", fmt.Sprintf("apptrack/1.0 (Contact: %s)", p.Email))
	req.Header.Set("Accept", "application/json")

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("usajobs request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usajobs returned status %d", resp.StatusCode)
	}

	var body struct {
		SearchResult struct {
			SearchResultItems []struct {
				MatchedObjectDescriptor usaJobsDescriptor `json:"MatchedObjectDescriptor"`
			} `json:"SearchResultItems"`
		} `json:"SearchResult"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to parse usajobs response: %w", err)
	}

	var listings []Listing
	for _, item := range body.SearchResult.SearchResultItems {
		listings = append(listings, item.MatchedObjectDescriptor.toListing())
	}
	return listings, nil
}

// Details is not supported; search results already carry full information.
func (p *USAJobs) Details(ctx context.Context, jobID string) (*Listing, error) {
	return nil, nil
}

type usaJobsDescriptor struct {
	PositionID           string `json:"PositionID"`
	PositionTitle        string `json:"PositionTitle"`
	OrganizationName     string `json:"OrganizationName"`
	QualificationSummary string `json:"QualificationSummary"`
	PublicationStartDate string `json:"PublicationStartDate"`
	ApplyURI             []string
	PositionLocation     []struct {
		CityName  string `json:"CityName"`
		StateCode string `json:"StateCode"`
	} `json:"PositionLocation"`
	PositionRemuneration []struct {
		MinimumRange string `json:"MinimumRange"`
		MaximumRange string `json:"MaximumRange"`
	} `json:"PositionRemuneration"`
	UserArea struct {
		Details struct {
			MajorDuties []string `json:"MajorDuties"`
		} `json:"Details"`
	} `json:"UserArea"`
}

func (d usaJobsDescriptor) toListing() Listing {
	var salaryMin, salaryMax *float64
	if len(d.PositionRemuneration) > 0 {
		salaryMin = parseSalary(d.PositionRemuneration[0].MinimumRange)
		salaryMax = parseSalary(d.PositionRemuneration[0].MaximumRange)
	}

	var postedDate *time.Time
	if d.PublicationStartDate != "" {
		if t, err := time.Parse(time.RFC3339, d.PublicationStartDate); err == nil {
			postedDate = &t
		} else if t, err := time.Parse("2006-01-02", d.PublicationStartDate); err == nil {
			postedDate = &t
		}
	}

	var locationParts []string
	remote := false
	for i, loc := range d.PositionLocation {
		city := strings.ToLower(loc.CityName)
		if city == "anywhere" || city == "remote" || city == "telework" {
			remote = true
		}
		if i < 2 && loc.CityName != "" && loc.StateCode != "" {
			locationParts = append(locationParts, fmt.Sprintf("%s, %s", loc.CityName, loc.StateCode))
		}
	}
	location := strings.Join(locationParts, "; ")
	if location == "" {
		location = "USA"
	}

	description := d.QualificationSummary
	if len(d.UserArea.Details.MajorDuties) > 0 {
		description = d.UserArea.Details.MajorDuties[0]
	}

	var applyURL string
	if len(d.ApplyURI) > 0 {
		applyURL = d.ApplyURI[0]
	}

	var requirements []string
	if d.QualificationSummary != "" {
		lines := strings.Split(d.QualificationSummary, "\n")
		if len(lines) > 3 {
			lines = lines[:3]
		}
		requirements = lines
	}

	company := d.OrganizationName
	if company == "" {
		company = "US Government"
	}

	return Listing{
		JobID:          d.PositionID,
		Title:          d.PositionTitle,
		Company:        company,
		Location:       location,
		Description:    description,
		JobURL:         applyURL,
		SalaryMin:      salaryMin,
		SalaryMax:      salaryMax,
		SalaryCurrency: "USD",
		EmploymentType: "Full-time",
		Remote:         remote,
		PostedDate:     postedDate,
		Source:         "USAJobs.gov",
		Requirements:   requirements,
		Benefits:       []string{"Federal Benefits Package", "Health Insurance", "Retirement Plan"},
	}
}

func parseSalary(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &v
}
