package preflight

import (
	"context"

	"dualpresenter/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every preflight check for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
		CheckCardsFile(cfg.CardsFile()),
		CheckNamesFile(cfg.NamesFile()),
		CheckLocale(cfg.Presentation.Locale),
		CheckDirectoryAccess("Preview directory", cfg.Paths.PreviewDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
		CheckSessionLock(ctx, cfg.Paths.StateFile),
	}
	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
