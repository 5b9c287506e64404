package cmd

import (
	"strings"
	"testing"
)

func seedApplications(t *testing.T) {
	t.Helper()
	runCommand(t, "add", "--company", "Acme Corp", "--position", "Go Developer", "--status", "applied", "--date", "2026-08-01", "--email", "")
	runCommand(t, "add", "--company", "Beta LLC", "--position", "Backend Engineer", "--status", "rejected", "--date", "2026-08-02", "--email", "")
}

func TestListCommand_All(t *testing.T) {
	resetViper(t)
	seedApplications(t)

	output := runCommand(t, "list", "--status", "", "--company", "")
	if !strings.Contains(output, "Acme Corp") || !strings.Contains(output, "Beta LLC") {
		t.Errorf("expected both companies, got: %s", output)
	}
	if !strings.Contains(output, "2 application(s)") {
		t.Errorf("expected a count line, got: %s", output)
	}
}

func TestListCommand_StatusFilter(t *testing.T) {
	resetViper(t)
	seedApplications(t)

	output := runCommand(t, "list", "--status", "rejected", "--company", "")
	if strings.Contains(output, "Acme Corp") {
		t.Errorf("applied record must be filtered out, got: %s", output)
	}
	if !strings.Contains(output, "Beta LLC") {
		t.Errorf("expected the rejected record, got: %s", output)
	}
}

func TestListCommand_Empty(t *testing.T) {
	resetViper(t)

	output := runCommand(t, "list", "--status", "", "--company", "")
	if !strings.Contains(output, "No applications found.") {
		t.Errorf("expected the empty message, got: %s", output)
	}
}

func TestSearchCommand(t *testing.T) {
	resetViper(t)
	seedApplications(t)

	output := runCommand(t, "search", "acme")
	if !strings.Contains(output, "Acme Corp") {
		t.Errorf("expected a match, got: %s", output)
	}
	if strings.Contains(output, "Beta LLC") {
		t.Errorf("unexpected match, got: %s", output)
	}
}

func TestSummaryCommand(t *testing.T) {
	resetViper(t)
	seedApplications(t)

	output := runCommand(t, "summary")
	if !strings.Contains(output, "Application Summary") {
		t.Errorf("expected the summary header, got: %s", output)
	}
	// One of two applications moved past applied.
	if !strings.Contains(output, "50.0%") {
		t.Errorf("expected a 50%% response rate, got: %s", output)
	}
}
