package cmd

import (
	"strings"
	"testing"
)

func TestReportCommand_WeeklyActivity(t *testing.T) {
	resetViper(t)

	output := runCommand(t, "report", "--weekly", "4")
	if !strings.Contains(output, "Activity by week") {
		t.Errorf("expected the weekly header, got: %s", output)
	}
	if !strings.Contains(output, "average per week") {
		t.Errorf("expected the per-week average line, got: %s", output)
	}
}

func TestReportCommand_MonthlyActivity(t *testing.T) {
	resetViper(t)

	output := runCommand(t, "report", "--weekly", "0", "--monthly", "3")
	if !strings.Contains(output, "average per month") {
		t.Errorf("expected the per-month average line, got: %s", output)
	}
}
