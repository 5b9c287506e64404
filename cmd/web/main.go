// Package main is the entry point for the apptrack web server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"apptrack/internal/config"
	"apptrack/internal/jobsearch"
	"apptrack/internal/logger"
	"apptrack/internal/observability"
	"apptrack/internal/store/jsonfile"
	"apptrack/internal/web"
)

func main() {
	// A missing .env file is fine, environment variables still apply.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg := logger.New("apptrack-web")
	ctx := context.Background()

	st, err := jsonfile.Open(cfg.DataFile, logg)
	if err != nil {
		log.Fatalf("Failed to open application store: %v", err)
	}

	jobs := jobsearch.NewService(jobsearch.Options{
		Mock:         cfg.JobAPIMode == "mock",
		USAJobsEmail: cfg.USAJobsEmail,
		AdzunaAppID:  cfg.AdzunaAppID,
		AdzunaAPIKey: cfg.AdzunaAPIKey,
		RapidAPIKey:  cfg.RapidAPIKey,
	}, logg)

	// Tracing is optional; without a collector endpoint it stays off.
	if cfg.OTELEndpoint != "" {
		shutdownTracer, err := observability.InitTracer(ctx, "apptrack-web", cfg.OTELEndpoint)
		if err != nil {
			log.Fatalf("Failed to init tracing: %v", err)
		}
		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				log.Printf("Failed to shutdown tracer: %v", err)
			}
		}()
	}

	// Metrics
	metricsHandler, shutdownMetrics, err := observability.InitMetrics(ctx, "apptrack-web")
	if err != nil {
		log.Fatalf("Failed to init metrics: %v", err)
	}
	defer func() {
		if err := shutdownMetrics(context.Background()); err != nil {
			log.Printf("Failed to shutdown metrics: %v", err)
		}
	}()

	// Observable gauge reads the collection size only when scraped.
	meter := otel.Meter("apptrack-web")
	_, err = meter.Int64ObservableGauge("apptrack.applications.count",
		metric.WithDescription("Current number of tracked applications"),
		metric.WithInt64Callback(func(ctx context.Context, obs metric.Int64Observer) error {
			obs.Observe(int64(st.Len()))
			return nil
		}),
	)
	if err != nil {
		log.Printf("Failed to register application count metric: %v", err)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv, err := web.New(web.Options{
		Addr:           addr,
		APIRateLimit:   cfg.APIRateLimit,
		MetricsHandler: metricsHandler,
	}, st, jobs, logg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	go func() {
		log.Printf("Job Application Tracker starting on %s", addr)
		if err := srv.Run(ctx); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down web server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited properly")
}
