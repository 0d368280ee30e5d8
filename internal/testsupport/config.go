package testsupport

import (
	"path/filepath"
	"testing"

	"dualpresenter/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.PreviewDir = filepath.Join(base, "previews")
	cfgVal.Paths.StateFile = filepath.Join(base, "state", "state.toml")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithPageSize overrides the names page size.
func WithPageSize(size int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Presentation.PageSize = size
	}
}

// WithDistribution toggles name distribution across unranged cards.
func WithDistribution(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Presentation.DistributeNames = enabled
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
