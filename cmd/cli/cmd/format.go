package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"apptrack/internal/store"
	"apptrack/internal/store/jsonfile"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

func colorizeStatus(s store.Status) string {
	var color string
	switch s {
	case store.StatusApplied:
		color = colorBlue
	case store.StatusScreening, store.StatusInterviewScheduled:
		color = colorYellow
	case store.StatusInterviewed:
		color = colorCyan
	case store.StatusOfferReceived, store.StatusAccepted:
		color = colorGreen
	case store.StatusRejected:
		color = colorRed
	default:
		color = colorDim
	}
	return fmt.Sprintf("%s%s%s", color, statusTitle(s), colorReset)
}

func statusTitle(s store.Status) string {
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

// resolveID accepts either a full application id or an unambiguous prefix.
func resolveID(s *jsonfile.Store, idOrPrefix string) (string, error) {
	if _, ok := s.Get(idOrPrefix); ok {
		return idOrPrefix, nil
	}

	var matches []string
	for _, app := range s.All() {
		if strings.HasPrefix(app.ID, idOrPrefix) {
			matches = append(matches, app.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no application matches id %q", idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id prefix %q is ambiguous (%d matches)", idOrPrefix, len(matches))
	}
}

func printApplicationRow(cmd *cobra.Command, app *store.Application) {
	cmd.Printf("%s%-10s%s %-25s %-30s %-22s %s\n",
		colorDim, shortID(app.ID), colorReset,
		truncate(app.Company, 25), truncate(app.Position, 30),
		colorizeStatus(app.Status), formatDate(app.ApplicationDate))
}

func printListHeader(cmd *cobra.Command) {
	cmd.Printf("%s%-10s %-25s %-30s %-13s %s%s\n",
		colorBold, "ID", "COMPANY", "POSITION", "STATUS", "APPLIED", colorReset)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
