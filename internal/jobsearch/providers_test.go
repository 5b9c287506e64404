package jobsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUSAJobs_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/search") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("Keyword"); got != "software engineer" {
			t.Errorf("unexpected keyword: %q", got)
		}
		if got := r.URL.Query().Get("LocationName"); got != "Washington" {
			t.Errorf("unexpected location: %q", got)
		}
		ua := r.Header.Get("User-Agent")
		if !strings.Contains(ua, "me@example.com") {
			t.Errorf("expected contact email in User-Agent, got %q", ua)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"SearchResult": {
				"SearchResultItems": [
					{
						"MatchedObjectDescriptor": {
							"PositionID": "ABC-123",
							"PositionTitle": "Software Engineer",
							"OrganizationName": "Department of Testing",
							"QualificationSummary": "Go experience required.",
							"PublicationStartDate": "2026-08-01",
							"ApplyURI": ["https://usajobs.gov/apply/ABC-123"],
							"PositionLocation": [
								{"CityName": "Washington", "StateCode": "DC"},
								{"CityName": "Anywhere", "StateCode": ""}
							],
							"PositionRemuneration": [
								{"MinimumRange": "90,000", "MaximumRange": "120,000"}
							],
							"UserArea": {"Details": {"MajorDuties": ["Build and ship services."]}}
						}
					}
				]
			}
		}`))
	}))
	defer server.Close()

	p := NewUSAJobs("me@example.com")
	p.BaseURL = server.URL

	listings, err := p.Search(context.Background(), "software engineer", "Washington", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}

	job := listings[0]
	if job.JobID != "ABC-123" || job.Title != "Software Engineer" {
		t.Errorf("unexpected listing: %+v", job)
	}
	if job.Company != "Department of Testing" {
		t.Errorf("unexpected company: %q", job.Company)
	}
	if job.SalaryMin == nil || *job.SalaryMin != 90000 {
		t.Errorf("expected comma-stripped min salary 90000, got %v", job.SalaryMin)
	}
	if job.SalaryMax == nil || *job.SalaryMax != 120000 {
		t.Errorf("expected max salary 120000, got %v", job.SalaryMax)
	}
	if !job.Remote {
		t.Error("expected 'Anywhere' location to mark the job remote")
	}
	if job.Location != "Washington, DC" {
		t.Errorf("unexpected location: %q", job.Location)
	}
	if job.Description != "Build and ship services." {
		t.Errorf("expected the first major duty as description, got %q", job.Description)
	}
	if job.Source != "USAJobs.gov" {
		t.Errorf("unexpected source: %q", job.Source)
	}
	if job.PostedDate == nil || job.PostedDate.Day() != 1 {
		t.Errorf("unexpected posted date: %v", job.PostedDate)
	}
}

func TestUSAJobs_SearchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := NewUSAJobs("")
	p.BaseURL = server.URL

	if _, err := p.Search(context.Background(), "x", "", 5); err == nil {
		t.Error("expected an error for a non-200 response")
	}
}

func TestUSAJobs_DetailsUnsupported(t *testing.T) {
	p := NewUSAJobs("")
	job, err := p.Details(context.Background(), "ABC-123")
	if err != nil || job != nil {
		t.Errorf("expected (nil, nil), got (%v, %v)", job, err)
	}
}

func TestAdzuna_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/jobs/us/search/1") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("app_id") != "my-app" || q.Get("app_key") != "my-key" {
			t.Errorf("missing credentials in query: %v", q)
		}
		if q.Get("what") != "golang" {
			t.Errorf("unexpected query: %q", q.Get("what"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [
				{
					"id": 4242,
					"title": "Go Developer",
					"description": "Write Go services.",
					"redirect_url": "https://adzuna.com/job/4242",
					"salary_min": 95000,
					"salary_max": 125000,
					"contract_type": "permanent",
					"created": "2026-08-10T12:00:00Z",
					"company": {"display_name": "Acme"},
					"location": {"display_name": "Austin, TX"}
				}
			]
		}`))
	}))
	defer server.Close()

	p := NewAdzuna("my-app", "my-key")
	p.BaseURL = server.URL

	listings, err := p.Search(context.Background(), "golang", "", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}

	job := listings[0]
	// Numeric ids are normalized to strings.
	if job.JobID != "4242" {
		t.Errorf("unexpected job id: %q", job.JobID)
	}
	if job.Company != "Acme" || job.Location != "Austin, TX" {
		t.Errorf("unexpected listing: %+v", job)
	}
	if job.SalaryMin == nil || *job.SalaryMin != 95000 {
		t.Errorf("unexpected min salary: %v", job.SalaryMin)
	}
	if job.Source != "Adzuna" {
		t.Errorf("unexpected source: %q", job.Source)
	}
}

func TestAdzuna_RequiresCredentials(t *testing.T) {
	p := NewAdzuna("", "")
	if _, err := p.Search(context.Background(), "x", "", 5); err == nil {
		t.Error("expected an error without credentials")
	}
}

func TestJSearch_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-RapidAPI-Key") != "rapid-key" {
			t.Errorf("missing api key header")
		}
		// Location is folded into the query string.
		if got := r.URL.Query().Get("query"); got != "golang in Berlin" {
			t.Errorf("unexpected query: %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{
					"job_id": "js-1",
					"job_title": "Backend Engineer",
					"employer_name": "Acme",
					"job_city": "Berlin",
					"job_state": "",
					"job_country": "DE",
					"job_description": "Requirements: Go. Benefits: remote work.",
					"job_apply_link": "https://example.com/js-1",
					"job_min_salary": 80000,
					"job_max_salary": 100000,
					"job_salary_period": "YEAR",
					"job_employment_type": "FULLTIME",
					"job_is_remote": true,
					"job_posted_at_datetime_utc": "2026-08-15T00:00:00Z"
				}
			]
		}`))
	}))
	defer server.Close()

	p := NewJSearch("rapid-key")
	p.BaseURL = server.URL

	listings, err := p.Search(context.Background(), "golang", "Berlin", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}

	job := listings[0]
	if job.JobID != "js-1" || !job.Remote {
		t.Errorf("unexpected listing: %+v", job)
	}
	if job.SalaryMin == nil || *job.SalaryMin != 80000 {
		t.Errorf("expected salary with a period set, got %v", job.SalaryMin)
	}
	if len(job.Requirements) == 0 || len(job.Benefits) == 0 {
		t.Error("expected requirements and benefits markers from the description")
	}
}

func TestJSearch_SalaryIgnoredWithoutPeriod(t *testing.T) {
	j := jsearchJob{JobID: "x", JobMinSalary: salary(50), JobMaxSalary: salary(60)}
	listing := j.toListing()
	if listing.SalaryMin != nil || listing.SalaryMax != nil {
		t.Error("salary without a period must be dropped")
	}
}

func TestJSearch_LocationSkipsEmptyParts(t *testing.T) {
	j := jsearchJob{JobCity: "Berlin", JobCountry: "Germany"}
	if got := j.toListing().Location; got != "Berlin, Germany" {
		t.Errorf("expected \"Berlin, Germany\", got %q", got)
	}

	j = jsearchJob{JobCountry: "Germany"}
	if got := j.toListing().Location; got != "Germany" {
		t.Errorf("expected \"Germany\", got %q", got)
	}

	j = jsearchJob{}
	if got := j.toListing().Location; got != "" {
		t.Errorf("expected an empty location, got %q", got)
	}
}

func TestJSearch_Details(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/job-details") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("job_id"); got != "js-1" {
			t.Errorf("unexpected job_id: %q", got)
		}
		w.Write([]byte(`{"data": [{"job_id": "js-1", "job_title": "Backend Engineer", "employer_name": "Acme"}]}`))
	}))
	defer server.Close()

	p := NewJSearch("rapid-key")
	p.BaseURL = server.URL

	job, err := p.Details(context.Background(), "js-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job == nil || job.Title != "Backend Engineer" {
		t.Errorf("unexpected listing: %+v", job)
	}
}

func TestMock_SearchFilters(t *testing.T) {
	p := NewMock()

	all, err := p.Search(context.Background(), "", "", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected all 3 sample listings, got %d", len(all))
	}

	matched, _ := p.Search(context.Background(), "data scientist", "", 10)
	if len(matched) != 1 || matched[0].JobID != "mock_003" {
		t.Errorf("unexpected filter result: %v", matched)
	}
}

func TestMock_Details(t *testing.T) {
	p := NewMock()
	job, err := p.Details(context.Background(), "mock_002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job == nil || job.Company != "StartupCorp" {
		t.Errorf("unexpected listing: %+v", job)
	}

	if job, _ := p.Details(context.Background(), "mock_999"); job != nil {
		t.Errorf("expected nil for an unknown id, got %+v", job)
	}
}
