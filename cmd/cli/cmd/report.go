package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"apptrack/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show an analytics report",
	Long: `Print the full analytics report: response rates, top companies and stale
applications. Use --weekly or --monthly for activity breakdowns over time.`,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			cmd.Printf("Failed to open store: %v\n", err)
			return
		}
		rep := report.New(s.All())

		flags := cmd.Flags()
		if weeks, _ := flags.GetInt("weekly"); weeks > 0 {
			printActivity(cmd, rep.WeeklySummary(weeks))
			return
		}
		if months, _ := flags.GetInt("monthly"); months > 0 {
			printActivity(cmd, rep.MonthlyTrends(months))
			return
		}

		cmd.Println(rep.SummaryReport())

		staleDays, _ := flags.GetInt("stale")
		stale := rep.StaleApplications(staleDays)
		if len(stale) > 0 {
			cmd.Printf("%sNeeds a follow-up (%d+ days without update):%s\n", colorYellow, staleDays, colorReset)
			for _, app := range stale {
				cmd.Printf("  %s  %s - %s (last update %s)\n",
					shortID(app.ID), app.Company, app.Position, formatDate(app.UpdatedAt))
			}
		}
	},
}

func printActivity(cmd *cobra.Command, summary report.ActivitySummary) {
	cmd.Printf("%sActivity by %s (%s)%s\n", colorBold, summary.Unit, summary.Period, colorReset)
	cmd.Println("──────────────────────────────")

	keys := make([]string, 0, len(summary.Buckets))
	for k := range summary.Buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		bucket := summary.Buckets[k]
		cmd.Printf("%s%s%s  %d application(s)\n", colorCyan, k, colorReset, bucket.ApplicationsCount)
		for _, company := range bucket.Companies {
			cmd.Printf("    %s\n", company)
		}
	}
	cmd.Printf("\nTotal: %d, average per %s: %.1f\n",
		summary.TotalApplications, summary.Unit, summary.AveragePerPeriod)
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().Int("stale", 30, "Days without update before an application counts as stale")
	reportCmd.Flags().Int("weekly", 0, "Show per-week activity for the last N weeks")
	reportCmd.Flags().Int("monthly", 0, "Show per-month activity for the last N months")
}
