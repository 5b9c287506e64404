package cmd

import (
	"github.com/spf13/cobra"

	"apptrack/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List job applications",
	Long:  `List applications with optional status and company filters. Sortable by company, position, application_date or updated_at.`,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			cmd.Printf("Failed to open store: %v\n", err)
			return
		}

		flags := cmd.Flags()
		opts := store.ListOptions{}
		if statusTag, _ := flags.GetString("status"); statusTag != "" {
			status, err := store.ParseStatus(statusTag)
			if err != nil {
				cmd.Printf("%sError:%s %v\n", colorRed, colorReset, err)
				return
			}
			opts.Status = status
		}
		opts.Company, _ = flags.GetString("company")
		opts.Limit, _ = flags.GetInt("limit")
		opts.SortBy, _ = flags.GetString("sort")
		asc, _ := flags.GetBool("asc")
		opts.Reverse = !asc

		apps := s.List(opts)
		if len(apps) == 0 {
			cmd.Println("No applications found.")
			return
		}

		printListHeader(cmd)
		for _, app := range apps {
			printApplicationRow(cmd, app)
		}
		cmd.Printf("\n%d application(s)\n", len(apps))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("status", "s", "", "Filter by status")
	listCmd.Flags().StringP("company", "c", "", "Filter by company (substring match)")
	listCmd.Flags().Int("limit", 0, "Maximum number of results (0 = all)")
	listCmd.Flags().String("sort", "updated_at", "Sort field: company, position, application_date, updated_at")
	listCmd.Flags().BoolP("asc", "a", false, "Sort ascending instead of newest first")
}
