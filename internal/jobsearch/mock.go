package jobsearch

import (
	"context"
	"strings"
	"time"
)

// Mock serves canned listings for development and as the final fallback when
// no external provider returns results.
type Mock struct{}

// NewMock creates the mock provider.
func NewMock() *Mock { return &Mock{} }

func (p *Mock) Name() string { return "Mock" }

func salary(v float64) *float64 { return &v }

func sampleListings() []Listing {
	now := time.Now().UTC()
	return []Listing{
		{
			JobID:          "mock_001",
			Title:          "Senior Go Developer",
			Company:        "Tech Solutions Inc",
			Location:       "San Francisco, CA, USA",
			Description:    "We are looking for a Senior Go Developer to join our team. Experience with HTTP services, PostgreSQL and API development required.",
			JobURL:         "https://example.com/job/1",
			SalaryMin:      salary(120000),
			SalaryMax:      salary(160000),
			SalaryCurrency: "USD",
			EmploymentType: "Full-time",
			Remote:         true,
			PostedDate:     &now,
			Source:         "Mock",
			Requirements:   []string{"Go", "HTTP", "PostgreSQL", "API Development"},
			Benefits:       []string{"Health Insurance", "401k", "Remote Work"},
		},
		{
			JobID:          "mock_002",
			Title:          "Full Stack Engineer",
			Company:        "StartupCorp",
			Location:       "Austin, TX, USA",
			Description:    "Join our fast-growing startup! Looking for a full-stack engineer with React and Node.js experience.",
			JobURL:         "https://example.com/job/2",
			SalaryMin:      salary(90000),
			SalaryMax:      salary(130000),
			SalaryCurrency: "USD",
			EmploymentType: "Full-time",
			PostedDate:     &now,
			Source:         "Mock",
			Requirements:   []string{"React", "Node.js", "JavaScript", "MongoDB"},
			Benefits:       []string{"Equity", "Flexible Hours", "Free Lunch"},
		},
		{
			JobID:          "mock_003",
			Title:          "Data Scientist",
			Company:        "Analytics Pro",
			Location:       "New York, NY, USA",
			Description:    "Data Scientist position focusing on machine learning and predictive analytics. Python and R experience preferred.",
			JobURL:         "https://example.com/job/3",
			SalaryMin:      salary(110000),
			SalaryMax:      salary(150000),
			SalaryCurrency: "USD",
			EmploymentType: "Full-time",
			Remote:         true,
			PostedDate:     &now,
			Source:         "Mock",
			Requirements:   []string{"Python", "R", "Machine Learning", "Statistics"},
			Benefits:       []string{"Health Insurance", "Dental", "Vision", "401k"},
		},
	}
}

// Search filters the sample listings by a simple substring match against the
// title, description and requirements.
func (p *Mock) Search(ctx context.Context, query, location string, limit int) ([]Listing, error) {
	q := strings.ToLower(query)
	var matches []Listing
	for _, job := range sampleListings() {
		if len(matches) >= limit {
			break
		}
		if q == "" || matchesQuery(&job, q) {
			matches = append(matches, job)
		}
	}
	return matches, nil
}

func matchesQuery(job *Listing, q string) bool {
	if strings.Contains(strings.ToLower(job.Title), q) ||
		strings.Contains(strings.ToLower(job.Description), q) {
		return true
	}
	for _, req := range job.Requirements {
		if strings.Contains(q, strings.ToLower(req)) {
			return true
		}
	}
	return false
}

// Details returns the sample listing with the given id.
func (p *Mock) Details(ctx context.Context, jobID string) (*Listing, error) {
	for _, job := range sampleListings() {
		if job.JobID == jobID {
			return &job, nil
		}
	}
	return nil, nil
}
