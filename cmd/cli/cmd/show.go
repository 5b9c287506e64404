package cmd

import (
	"github.com/spf13/cobra"

	"apptrack/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show the full details of an application",
	Long:  `Display all recorded fields of a single application. The id may be abbreviated to any unambiguous prefix.`,
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
		app, _ := s.Get(id)

		printApplication(cmd, app)
	},
}

func printApplication(cmd *cobra.Command, app *store.Application) {
	cmd.Printf("%s%s - %s%s\n", colorBold, app.Company, app.Position, colorReset)
	cmd.Println("──────────────────────────────")

	cmd.Printf("%sID:%s          %s\n", colorDim, colorReset, app.ID)
	cmd.Printf("%sStatus:%s      %s\n", colorDim, colorReset, colorizeStatus(app.Status))
	cmd.Printf("%sApplied:%s     %s\n", colorDim, colorReset, formatDate(app.ApplicationDate))

	if app.JobURL != "" {
		cmd.Printf("%sURL:%s         %s\n", colorDim, colorReset, app.JobURL)
	}
	if app.SalaryRange != "" {
		cmd.Printf("%sSalary:%s      %s\n", colorDim, colorReset, app.SalaryRange)
	}
	if app.Location != "" {
		cmd.Printf("%sLocation:%s    %s\n", colorDim, colorReset, app.Location)
	}
	if app.ContactPerson != "" {
		cmd.Printf("%sContact:%s     %s\n", colorDim, colorReset, app.ContactPerson)
	}
	if app.ContactEmail != "" {
		cmd.Printf("%sEmail:%s       %s\n", colorDim, colorReset, app.ContactEmail)
	}
	if app.JobPostingSource != "" {
		cmd.Printf("%sSource:%s      %s\n", colorDim, colorReset, app.JobPostingSource)
	}

	cmd.Printf("%sCreated:%s     %s\n", colorDim, colorReset, app.CreatedAt.Format("2006-01-02 15:04"))
	cmd.Printf("%sUpdated:%s     %s\n", colorDim, colorReset, app.UpdatedAt.Format("2006-01-02 15:04"))

	if app.Notes != "" {
		cmd.Printf("\n%sNotes:%s\n%s\n", colorDim, colorReset, app.Notes)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
