package preflight

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"dualpresenter/internal/roster"
	"dualpresenter/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckSheets(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cards := []roster.Card{
		{ID: 1, Type: roster.CardTitle, Title: "Welcome", Display: roster.DisplayBoth},
		testsupport.NamesCard(2, "CS", "", ""),
	}
	names := testsupport.Attending("CS", "Anna", "Bob")
	names = append(names, roster.Name{ID: 3, Name: "Nick", Group: "CS"})
	testsupport.WriteWorkbook(t, cfg, cards, names)

	result := CheckCardsFile(cfg.CardsFile())
	if !result.Passed || !strings.Contains(result.Detail, "2 cards, 1 names cards") {
		t.Fatalf("unexpected cards result %+v", result)
	}
	result = CheckNamesFile(cfg.NamesFile())
	if !result.Passed || !strings.Contains(result.Detail, "3 names, 2 attending") {
		t.Fatalf("unexpected names result %+v", result)
	}
}

func TestCheckSheetMissingSuggestsDataInit(t *testing.T) {
	result := CheckCardsFile(filepath.Join(t.TempDir(), "cards.csv"))
	if result.Passed {
		t.Fatal("expected failure for missing file")
	}
	if !strings.Contains(result.Detail, "data init") {
		t.Fatalf("expected data init hint, got %q", result.Detail)
	}
}

func TestCheckLocale(t *testing.T) {
	if result := CheckLocale("el"); !result.Passed {
		t.Fatalf("expected el to pass, got %q", result.Detail)
	}
	if result := CheckLocale("not a locale!"); result.Passed {
		t.Fatal("expected invalid locale to fail")
	}
}

func TestCheckSessionLock(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "state.toml")
	ctx := context.Background()

	if result := CheckSessionLock(ctx, stateFile); !result.Passed {
		t.Fatalf("expected free lock, got %q", result.Detail)
	}

	held := flock.New(stateFile + ".lock")
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("TryLock: ok=%v err=%v", ok, err)
	}
	defer func() { _ = held.Unlock() }()

	result := CheckSessionLock(ctx, stateFile)
	if result.Passed {
		t.Fatal("expected held lock to fail")
	}
	if !strings.Contains(result.Detail, "held by another process") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	if results := RunAll(context.Background(), nil); results != nil {
		t.Fatalf("expected nil results, got %v", results)
	}
}

func TestRunAll_ReadyConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	testsupport.WriteWorkbook(t, cfg, []roster.Card{testsupport.NamesCard(1, "CS", "", "")}, testsupport.Attending("CS", "Anna"))

	results := RunAll(context.Background(), cfg)
	if len(results) != 7 {
		t.Fatalf("expected 7 results, got %d", len(results))
	}
	if Failed(results) {
		t.Fatalf("expected all checks to pass: %+v", results)
	}
}

func TestRunAll_MissingDataFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	if !Failed(RunAll(context.Background(), cfg)) {
		t.Fatal("expected missing data directory to fail")
	}
}
