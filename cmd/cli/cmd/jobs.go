package cmd

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"apptrack/internal/config"
	"apptrack/internal/jobsearch"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Search external job boards",
	Long: `Query the configured job search providers (USAJobs, Adzuna, JSearch).
Providers without credentials are skipped; without any configured provider
sample data is returned so the command always works.`,
}

var jobsSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search job postings",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := jobService()
		if err != nil {
			cmd.Printf("%sError:%s %v\n", colorRed, colorReset, err)
			return
		}

		location, _ := cmd.Flags().GetString("location")
		limit, _ := cmd.Flags().GetInt("limit")
		query := strings.Join(args, " ")

		jobs := svc.Search(cmd.Context(), query, location, limit)
		if len(jobs) == 0 {
			cmd.Printf("No jobs found for %q.\n", query)
			return
		}

		for _, job := range jobs {
			cmd.Printf("%s%s%s\n", colorBold, job.Title, colorReset)
			cmd.Printf("  %s%-10s%s %s\n", colorDim, "Company:", colorReset, job.Company)
			loc := job.Location
			if job.Remote {
				loc += " (Remote)"
			}
			cmd.Printf("  %s%-10s%s %s\n", colorDim, "Location:", colorReset, loc)
			if salary := job.SalaryRange(); salary != "" {
				cmd.Printf("  %s%-10s%s %s\n", colorDim, "Salary:", colorReset, salary)
			}
			cmd.Printf("  %s%-10s%s %s (%s)\n", colorDim, "ID:", colorReset, job.JobID, job.Source)
			if job.JobURL != "" {
				cmd.Printf("  %s%-10s%s %s\n", colorDim, "URL:", colorReset, job.JobURL)
			}
			cmd.Println()
		}
		cmd.Printf("%d job(s) found\n", len(jobs))
	},
}

var jobsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configured job search providers",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := jobService()
		if err != nil {
			cmd.Printf("%sError:%s %v\n", colorRed, colorReset, err)
			return
		}

		report := svc.Status()
		cmd.Printf("%sJob Search Providers%s\n", colorBold, colorReset)
		cmd.Println("──────────────────────────────")
		for _, p := range report.Providers {
			cmd.Printf("%-12s %-10s %s\n", p.Name, p.Type, p.Cost)
		}
		if len(report.Recommendations) > 0 {
			cmd.Println()
			for _, rec := range report.Recommendations {
				cmd.Printf("%s→%s %s\n", colorYellow, colorReset, rec)
			}
		}
	},
}

// jobService builds the provider chain from environment configuration.
func jobService() (*jobsearch.Service, error) {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return jobsearch.NewService(jobsearch.Options{
		Mock:         cfg.JobAPIMode == "mock",
		USAJobsEmail: cfg.USAJobsEmail,
		AdzunaAppID:  cfg.AdzunaAppID,
		AdzunaAPIKey: cfg.AdzunaAPIKey,
		RapidAPIKey:  cfg.RapidAPIKey,
	}, quietLogger()), nil
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsSearchCmd)
	jobsCmd.AddCommand(jobsStatusCmd)

	jobsSearchCmd.Flags().StringP("location", "l", "", "Location filter")
	jobsSearchCmd.Flags().Int("limit", 10, "Maximum number of results")
}
