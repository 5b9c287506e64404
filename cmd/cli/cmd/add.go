package cmd

import (
	"github.com/spf13/cobra"

	"apptrack/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new job application",
	Long:  `Record a new job application. Company and position are required; everything else is optional and can be filled in later with "apptrack update".`,
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		raw := store.RawInput{}
		raw.Company, _ = flags.GetString("company")
		raw.Position, _ = flags.GetString("position")
		raw.ApplicationDate, _ = flags.GetString("date")
		raw.JobURL, _ = flags.GetString("url")
		raw.SalaryRange, _ = flags.GetString("salary")
		raw.Location, _ = flags.GetString("location")
		raw.Notes, _ = flags.GetString("notes")
		raw.ContactPerson, _ = flags.GetString("contact")
		raw.ContactEmail, _ = flags.GetString("email")

		in, err := store.ValidateInput(raw)
		if err != nil {
			cmd.Printf("%sError:%s %v\n", colorRed, colorReset, err)
			return
		}
		if status, _ := flags.GetString("status"); status != "" {
			parsed, err := store.ParseStatus(status)
			if err != nil {
				cmd.Printf("%sError:%s %v\n", colorRed, colorReset, err)
				return
			}
			in.Status = parsed
		}

		app, err := store.NewApplication(in)
		if err != nil {
			cmd.Printf("%sError:%s %v\n", colorRed, colorReset, err)
			return
		}

		s, err := openStore()
		if err != nil {
			cmd.Printf("Failed to open store: %v\n", err)
			return
		}
		id, err := s.Add(app)
		if err != nil {
			cmd.Printf("Failed to save application: %v\n", err)
			return
		}

		cmd.Printf("%s✓%s Added application %s%s%s\n", colorGreen, colorReset, colorBold, shortID(id), colorReset)
		cmd.Printf("  %s - %s (%s)\n", app.Company, app.Position, statusTitle(app.Status))
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringP("company", "c", "", "Company name (required)")
	addCmd.Flags().StringP("position", "p", "", "Position title (required)")
	addCmd.Flags().StringP("status", "s", "", "Initial status (default: applied)")
	addCmd.Flags().String("date", "", "Application date (YYYY-MM-DD, default: today)")
	addCmd.Flags().String("url", "", "Job posting URL")
	addCmd.Flags().String("salary", "", "Salary range")
	addCmd.Flags().StringP("location", "l", "", "Job location")
	addCmd.Flags().StringP("notes", "n", "", "Notes")
	addCmd.Flags().String("contact", "", "Contact person")
	addCmd.Flags().String("email", "", "Contact email")

	addCmd.MarkFlagRequired("company")
	addCmd.MarkFlagRequired("position")
}
