package cmd

import (
	"strings"
	"testing"

	"apptrack/internal/store"
)

func TestAddCommand_Success(t *testing.T) {
	resetViper(t)

	output := runCommand(t, "add",
		"--company", "Acme Corp",
		"--position", "Go Developer",
		"--status", "screening",
		"--date", "2026-08-01",
		"--email", "HR@Acme.com",
	)

	if !strings.Contains(output, "Added application") {
		t.Errorf("expected success message, got: %s", output)
	}
	if !strings.Contains(output, "Acme Corp - Go Developer") {
		t.Errorf("expected record summary, got: %s", output)
	}

	s, err := openStore()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 stored application, got %d", s.Len())
	}
	app := s.All()[0]
	if app.Status != store.StatusScreening {
		t.Errorf("expected status screening, got %s", app.Status)
	}
	if app.ContactEmail != "hr@acme.com" {
		t.Errorf("expected lowercased email, got %q", app.ContactEmail)
	}
	if app.ApplicationDate.Format("2006-01-02") != "2026-08-01" {
		t.Errorf("unexpected application date: %v", app.ApplicationDate)
	}
}

func TestAddCommand_RejectsInvalidInput(t *testing.T) {
	resetViper(t)

	output := runCommand(t, "add",
		"--company", "Acme",
		"--position", "Dev",
		"--email", "not-an-email",
	)
	if !strings.Contains(output, "Error") {
		t.Errorf("expected a validation error, got: %s", output)
	}

	s, _ := openStore()
	if s.Len() != 0 {
		t.Errorf("nothing must be stored on a validation error, got %d", s.Len())
	}
}

func TestAddCommand_RejectsUnknownStatus(t *testing.T) {
	resetViper(t)

	output := runCommand(t, "add",
		"--company", "Acme",
		"--position", "Dev",
		"--status", "ghosted",
	)
	if !strings.Contains(output, "Error") {
		t.Errorf("expected a status error, got: %s", output)
	}
}
