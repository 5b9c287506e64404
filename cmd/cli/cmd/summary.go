package cmd

import (
	"github.com/spf13/cobra"

	"apptrack/internal/report"
	"apptrack/internal/store"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a status summary",
	Long:  `Show how many applications are in each status, plus overall response, interview and offer rates.`,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			cmd.Printf("Failed to open store: %v\n", err)
			return
		}

		summary := s.StatusSummary()
		rates := report.New(s.All()).ResponseRates()

		cmd.Printf("%sApplication Summary%s\n", colorBold, colorReset)
		cmd.Println("──────────────────────────────")
		for _, status := range store.AllStatuses() {
			cmd.Printf("%-22s %d\n", statusTitle(status)+":", summary[status])
		}

		cmd.Printf("\n%sTotal:%s          %d\n", colorDim, colorReset, rates.TotalApplications)
		cmd.Printf("%sResponse rate:%s  %.1f%%\n", colorDim, colorReset, rates.ResponseRate)
		cmd.Printf("%sInterview rate:%s %.1f%%\n", colorDim, colorReset, rates.InterviewRate)
		cmd.Printf("%sOffer rate:%s     %.1f%%\n", colorDim, colorReset, rates.OfferRate)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
