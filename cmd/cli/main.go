// Package main is the entry point for the apptrack CLI.
// The CLI works directly against the JSON application store.
package main

import (
	"os"

	"apptrack/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
