package jobsearch

import (
	"context"
	"log/slog"
	"strings"
)

// Service queries multiple providers with fallback. Providers are tried in
// order, partial results are merged up to the limit, and mock data is the
// final fallback so a search never comes back empty-handed.
type Service struct {
	providers []Provider
	logger    *slog.Logger
}

// Options selects the providers explicitly. Credentials left empty disable
// the matching provider; Mock forces sample data only.
type Options struct {
	Mock         bool
	USAJobsEmail string
	AdzunaAppID  string
	AdzunaAPIKey string
	RapidAPIKey  string
}

// NewService builds the provider chain in priority order: free providers
// first, paid last.
func NewService(opts Options, logger *slog.Logger) *Service {
	if opts.Mock {
		logger.Info("job search using mock provider only")
		return &Service{providers: []Provider{NewMock()}, logger: logger}
	}

	providers := []Provider{NewUSAJobs(opts.USAJobsEmail)}
	if opts.AdzunaAppID != "" && opts.AdzunaAPIKey != "" {
		providers = append(providers, NewAdzuna(opts.AdzunaAppID, opts.AdzunaAPIKey))
	}
	if opts.RapidAPIKey != "" {
		providers = append(providers, NewJSearch(opts.RapidAPIKey))
	}

	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name()
	}
	logger.Info("job search providers configured", "providers", strings.Join(names, ", "))

	return &Service{providers: providers, logger: logger}
}

// Search tries each provider in turn and merges partial results up to the
// limit. Provider failures are logged and skipped; when nothing comes back
// at all, mock sample data is returned instead.
func (s *Service) Search(ctx context.Context, query, location string, limit int) []Listing {
	perProvider := limit
	if len(s.providers) > 1 {
		perProvider = max(1, limit/len(s.providers))
	}

	var all []Listing
	for _, p := range s.providers {
		jobs, err := p.Search(ctx, query, location, perProvider)
		if err != nil {
			s.logger.Error("job search provider failed", "provider", p.Name(), "error", err)
			continue
		}
		if len(jobs) == 0 {
			s.logger.Warn("job search provider returned no results", "provider", p.Name(), "query", query)
			continue
		}
		s.logger.Info("job search provider returned results", "provider", p.Name(), "count", len(jobs))
		all = append(all, jobs...)
		if len(all) >= limit {
			break
		}
	}

	if len(all) == 0 {
		s.logger.Warn("all job search providers came back empty, using mock data", "query", query)
		all, _ = NewMock().Search(ctx, query, location, limit)
	}

	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// Details asks each provider for the posting. Mock ids resolve against the
// mock provider so pre-filled sample results stay clickable.
func (s *Service) Details(ctx context.Context, jobID string) *Listing {
	for _, p := range s.providers {
		job, err := p.Details(ctx, jobID)
		if err != nil {
			s.logger.Error("job details lookup failed", "provider", p.Name(), "error", err)
			continue
		}
		if job != nil {
			return job
		}
	}

	if strings.HasPrefix(jobID, "mock_") {
		job, _ := NewMock().Details(ctx, jobID)
		return job
	}
	return nil
}

// ProviderStatus describes one configured provider for the status endpoint.
type ProviderStatus struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Cost string `json:"cost"`
}

// StatusReport summarizes the configured providers.
type StatusReport struct {
	TotalProviders  int              `json:"total_providers"`
	Providers       []ProviderStatus `json:"providers"`
	Recommendations []string         `json:"recommendations"`
}

// Status reports the configured provider chain and setup recommendations.
func (s *Service) Status() StatusReport {
	report := StatusReport{TotalProviders: len(s.providers)}

	hasUSAJobs, hasAdzuna, external := false, false, 0
	for _, p := range s.providers {
		ps := ProviderStatus{Name: p.Name(), Type: "External"}
		switch p.(type) {
		case *Mock:
			ps.Type = "Mock"
			ps.Cost = "Free"
		case *USAJobs:
			hasUSAJobs = true
			external++
			ps.Cost = "Free"
		case *Adzuna:
			hasAdzuna = true
			external++
			ps.Cost = "Free Tier"
		default:
			external++
			ps.Cost = "Paid"
		}
		report.Providers = append(report.Providers, ps)
	}

	if !hasUSAJobs {
		report.Recommendations = append(report.Recommendations,
			"Consider using the USAJobs.gov API (completely free for US government jobs)")
	}
	if !hasAdzuna {
		report.Recommendations = append(report.Recommendations,
			"Consider signing up for the Adzuna API (free tier available)")
	}
	if external == 0 {
		report.Recommendations = append(report.Recommendations,
			"No external APIs configured. Using mock data only.")
	}
	return report
}
