package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears viper state and points the data file into a temp dir.
func resetViper(t *testing.T) string {
	t.Helper()
	viper.Reset()
	path := filepath.Join(t.TempDir(), "applications.json")
	viper.Set("data", path)
	return path
}

// runCommand executes the root command with the given args and returns the
// combined output.
func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command failed: %v\noutput: %s", err, out.String())
	}
	return out.String()
}

func TestRootCommand_Help(t *testing.T) {
	resetViper(t)

	output := runCommand(t, "--help")
	if output == "" {
		t.Fatal("expected help output")
	}
	for _, sub := range []string{"add", "list", "summary", "jobs"} {
		if !bytes.Contains([]byte(output), []byte(sub)) {
			t.Errorf("expected %q in help output", sub)
		}
	}
}

func TestDataFileEnvVar(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("APPTRACK_DATA_FILE", "/tmp/shared/apps.json")

	initConfig()

	// Both binaries resolve the same variable to one shared file.
	if got := viper.GetString("data"); got != "/tmp/shared/apps.json" {
		t.Errorf("data path = %q, want /tmp/shared/apps.json", got)
	}
}

func TestResolveID_Prefix(t *testing.T) {
	resetViper(t)
	runCommand(t, "add", "--company", "Acme", "--position", "Dev")

	s, err := openStore()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	full := s.All()[0].ID

	got, err := resolveID(s, full[:8])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != full {
		t.Errorf("resolveID = %s, want %s", got, full)
	}

	if _, err := resolveID(s, "zzzzzzzz"); err == nil {
		t.Error("expected an error for an unknown prefix")
	}
}
