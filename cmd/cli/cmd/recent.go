package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recent applications",
	Long:  `List applications whose application date falls within the last N days (default 7).`,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			cmd.Printf("Failed to open store: %v\n", err)
			return
		}

		days, _ := cmd.Flags().GetInt("days")
		end := time.Now().UTC()
		apps := s.ByDateRange(end.AddDate(0, 0, -days), end)
		if len(apps) == 0 {
			cmd.Printf("No applications in the last %d days.\n", days)
			return
		}

		cmd.Printf("%sApplications in the last %d days%s\n\n", colorBold, days, colorReset)
		printListHeader(cmd)
		for _, app := range apps {
			printApplicationRow(cmd, app)
		}
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)

	recentCmd.Flags().IntP("days", "d", 7, "Number of days to look back")
}
