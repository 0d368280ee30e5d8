package testsupport

import (
	"context"
	"testing"

	"dualpresenter/internal/config"
	"dualpresenter/internal/logging"
	"dualpresenter/internal/previewcache"
)

// MustOpenPreviewCache opens the preview cache rooted at cfg's preview dir
// and closes it when the test finishes.
func MustOpenPreviewCache(t testing.TB, cfg *config.Config) *previewcache.Cache {
	t.Helper()

	cache, err := previewcache.Open(context.Background(), cfg.Paths.PreviewDir, logging.NewNop())
	if err != nil {
		t.Fatalf("previewcache.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = cache.Close()
	})
	return cache
}
