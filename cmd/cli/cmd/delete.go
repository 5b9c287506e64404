package cmd

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an application",
	Long:  `Remove an application from the store. Asks for confirmation unless --yes is passed.`,
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

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			cmd.Printf("Delete %s - %s? (y/N) ", app.Company, app.Position)
			reader := bufio.NewReader(cmd.InOrStdin())
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				cmd.Println("Aborted.")
				return
			}
		}

		ok, err := s.Delete(id)
		if err != nil {
			cmd.Printf("%sError:%s %v\n", colorRed, colorReset, err)
			return
		}
		if !ok {
			cmd.Printf("Application %s not found\n", shortID(id))
			return
		}
		cmd.Printf("%s✓%s Deleted %s - %s\n", colorGreen, colorReset, app.Company, app.Position)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
