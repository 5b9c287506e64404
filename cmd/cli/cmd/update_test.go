package cmd

import (
	"strings"
	"testing"

	"apptrack/internal/store"
)

func TestUpdateCommand_StatusWithNote(t *testing.T) {
	resetViper(t)
	runCommand(t, "add", "--company", "Acme", "--position", "Dev", "--status", "applied", "--date", "", "--email", "")

	s, _ := openStore()
	id := s.All()[0].ID

	output := runCommand(t, "update", id[:8], "--status", "interview_scheduled", "--note", "phone screen Friday")
	if !strings.Contains(output, "Updated") {
		t.Errorf("expected success message, got: %s", output)
	}

	s, _ = openStore()
	got, _ := s.Get(id)
	if got.Status != store.StatusInterviewScheduled {
		t.Errorf("expected status interview_scheduled, got %s", got.Status)
	}
	if !strings.Contains(got.Notes, "phone screen Friday") {
		t.Errorf("expected the note appended, got %q", got.Notes)
	}
	if !strings.Contains(got.Notes, "[20") {
		t.Errorf("expected a timestamped note line, got %q", got.Notes)
	}
}

func TestUpdateCommand_UnknownID(t *testing.T) {
	resetViper(t)

	output := runCommand(t, "update", "deadbeef", "--status", "rejected", "--note", "")
	if !strings.Contains(output, "Error") {
		t.Errorf("expected an error for an unknown id, got: %s", output)
	}
}

func TestDeleteCommand_WithYes(t *testing.T) {
	resetViper(t)
	runCommand(t, "add", "--company", "Acme", "--position", "Dev", "--status", "applied", "--date", "", "--email", "")

	s, _ := openStore()
	id := s.All()[0].ID

	output := runCommand(t, "delete", id, "--yes")
	if !strings.Contains(output, "Deleted") {
		t.Errorf("expected success message, got: %s", output)
	}

	s, _ = openStore()
	if s.Len() != 0 {
		t.Errorf("expected an empty store, got %d records", s.Len())
	}
}
