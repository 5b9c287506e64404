package cmd

import (
	"github.com/spf13/cobra"

	"apptrack/internal/report"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline [id]",
	Short: "Show the event timeline of an application",
	Long:  `Print the chronological events of a single application: creation, submission and the latest update.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			cmd.Printf("Failed to open store: %v\n", err)
			return
		}

		id, err := resolveID(s, args[0])
		if err != nil {
			cmd.Printf("%sError:%s %v\n", colorRed, colorReset, err)
			return
		}

		tl := report.New(s.All()).Timeline(id)
		if tl == nil {
			cmd.Printf("Application %s not found\n", shortID(id))
			return
		}

		app := tl.Application
		cmd.Printf("%s%s - %s%s\n", colorBold, app.Company, app.Position, colorReset)
		cmd.Println("──────────────────────────────")
		for _, ev := range tl.Events {
			cmd.Printf("%s%s%s  %-12s %s\n",
				colorDim, ev.Date.Format("2006-01-02 15:04"), colorReset, ev.Event, ev.Details)
		}
		cmd.Printf("\nDuration: %d day(s), current status: %s\n", tl.DurationDays, colorizeStatus(app.Status))
	},
}

func init() {
	rootCmd.AddCommand(timelineCmd)
}
