package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search applications",
	Long:  `Search across company, position, notes and contact person, case-insensitively.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			cmd.Printf("Failed to open store: %v\n", err)
			return
		}

		query := strings.Join(args, " ")
		results := s.Search(query)
		if len(results) == 0 {
			cmd.Printf("No applications match %q.\n", query)
			return
		}

		printListHeader(cmd)
		for _, app := range results {
			printApplicationRow(cmd, app)
		}
		cmd.Printf("\n%d result(s) for %q\n", len(results), query)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
