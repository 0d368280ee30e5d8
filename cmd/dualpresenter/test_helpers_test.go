package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dualpresenter/internal/config"
	"dualpresenter/internal/roster"
	"dualpresenter/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
}

// setupCLITestEnv writes a config file and a small deck:
//
//	#1 Title (both screens), #2 Names CS A..M, #3 Names CS distributed,
//	#4 Unattended (side only)
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	t.Setenv("DUALPRESENTER_DATA_DIR", "")
	cfg := testsupport.NewConfig(t, testsupport.WithPageSize(2))
	cfg.Logging.Level = "error"

	configPath := filepath.Join(testsupport.BaseDir(cfg), "config.toml")
	writeTestConfig(t, configPath, cfg)

	cards := []roster.Card{
		{ID: 1, Type: roster.CardTitle, Title: "Welcome", Display: roster.DisplayBoth},
		testsupport.NamesCard(2, "CS", "A", "M"),
		testsupport.NamesCard(3, "CS", "", ""),
		{ID: 4, Type: roster.CardUnattended, Title: "In absentia", Display: roster.DisplaySideOnly},
	}
	names := []roster.Name{
		{ID: 1, Name: "Anna", Group: "CS", Attending: true},
		{ID: 2, Name: "Bob", Group: "CS", Attending: true},
		{ID: 3, Name: "Zed", Group: "CS", Attending: true},
		{ID: 4, Name: "Nick", Group: "CS", Attending: false},
		{ID: 5, Name: "Άλκηστις", Group: "Arts", Attending: true},
	}
	testsupport.WriteWorkbook(t, cfg, cards, names)

	return &cliTestEnv{cfg: cfg, configPath: configPath}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content, err := cfg.Encode()
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
