package cmd

import (
	"github.com/spf13/cobra"

	"apptrack/internal/store"
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an application",
	Long: `Update fields of an existing application. Only the flags you pass are
changed. A --note together with --status is appended to the notes as a
timestamped line rather than replacing them.`,
	Args: cobra.ExactArgs(1),
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

		flags := cmd.Flags()
		upd := store.ApplicationUpdate{}
		set := func(name string, dst **string) {
			if flags.Changed(name) {
				v, _ := flags.GetString(name)
				*dst = &v
			}
		}
		set("company", &upd.Company)
		set("position", &upd.Position)
		set("url", &upd.JobURL)
		set("salary", &upd.SalaryRange)
		set("location", &upd.Location)
		set("contact", &upd.ContactPerson)
		set("email", &upd.ContactEmail)

		if flags.Changed("status") {
			statusTag, _ := flags.GetString("status")
			status, err := store.ParseStatus(statusTag)
			if err != nil {
				cmd.Printf("%sError:%s %v\n", colorRed, colorReset, err)
				return
			}
			note, _ := flags.GetString("note")
			// UpdateStatus on the copy produces the appended notes text.
			app.UpdateStatus(status, note)
			upd.Status = &statusTag
			upd.Notes = &app.Notes
		} else if flags.Changed("note") {
			note, _ := flags.GetString("note")
			app.UpdateStatus(app.Status, note)
			upd.Notes = &app.Notes
		}

		ok, err := s.Update(id, upd)
		if err != nil {
			cmd.Printf("%sError:%s %v\n", colorRed, colorReset, err)
			return
		}
		if !ok {
			cmd.Printf("Application %s not found\n", shortID(id))
			return
		}

		updated, _ := s.Get(id)
		cmd.Printf("%s✓%s Updated %s%s%s: %s - %s (%s)\n",
			colorGreen, colorReset, colorBold, shortID(id), colorReset,
			updated.Company, updated.Position, statusTitle(updated.Status))
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringP("status", "s", "", "New status")
	updateCmd.Flags().StringP("note", "n", "", "Note to append to the application")
	updateCmd.Flags().StringP("company", "c", "", "New company name")
	updateCmd.Flags().StringP("position", "p", "", "New position title")
	updateCmd.Flags().String("url", "", "New job URL")
	updateCmd.Flags().String("salary", "", "New salary range")
	updateCmd.Flags().StringP("location", "l", "", "New location")
	updateCmd.Flags().String("contact", "", "New contact person")
	updateCmd.Flags().String("email", "", "New contact email")
}
