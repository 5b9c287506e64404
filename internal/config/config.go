// Package config handles environment variable loading for the data file path,
// server port and job search API credentials.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all configuration values for the application.
type Config struct {
	// Path to the JSON document backing the application store
	DataFile string

	// HTTP server port for the web interface
	HTTPPort int

	// Requests per second allowed per client on the JSON API; 0 disables limiting
	APIRateLimit float64

	// OTLP collector endpoint for tracing; empty disables tracing
	OTELEndpoint string

	// Job search provider credentials. Providers without credentials are
	// skipped; "mock" forces the sample data provider.
	JobAPIMode   string // "auto" or "mock"
	AdzunaAppID  string
	AdzunaAPIKey string
	RapidAPIKey  string
	USAJobsEmail string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	dataFile := os.Getenv("APPTRACK_DATA_FILE")
	if dataFile == "" {
		dataFile = filepath.Join("data", "applications.json")
	}

	port := 9000 // Default
	if portStr := os.Getenv("PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		port = p
	}

	rateLimit := 10.0 // Default
	if limitStr := os.Getenv("APPTRACK_API_RATE_LIMIT"); limitStr != "" {
		l, err := strconv.ParseFloat(limitStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid APPTRACK_API_RATE_LIMIT: %w", err)
		}
		rateLimit = l
	}

	mode := os.Getenv("APPTRACK_JOB_API")
	if mode == "" {
		mode = "auto"
	}
	if mode != "auto" && mode != "mock" {
		return nil, fmt.Errorf("invalid APPTRACK_JOB_API %q, use auto or mock", mode)
	}

	return &Config{
		DataFile:     dataFile,
		HTTPPort:     port,
		APIRateLimit: rateLimit,
		OTELEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		JobAPIMode:   mode,
		AdzunaAppID:  os.Getenv("ADZUNA_APP_ID"),
		AdzunaAPIKey: os.Getenv("ADZUNA_API_KEY"),
		RapidAPIKey:  os.Getenv("RAPIDAPI_KEY"),
		USAJobsEmail: os.Getenv("USAJOBS_EMAIL"),
	}, nil
}
