package previewcache_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dualpresenter/internal/previewcache"
	"dualpresenter/internal/testsupport"
)

func hashOf(c byte) string {
	return strings.Repeat(string(c), 64)
}

func TestStoreAndExists(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cache := testsupport.MustOpenPreviewCache(t, cfg)
	ctx := context.Background()

	hash := hashOf('a')
	ok, err := cache.Exists(ctx, hash)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if ok {
		t.Fatal("expected empty cache to report missing preview")
	}

	path, err := cache.Store(ctx, hash, []byte("png-bytes"))
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if want := filepath.Join(cfg.Paths.PreviewDir, "slide_preview_"+hash+".png"); path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read stored preview: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("unexpected preview contents %q", data)
	}

	ok, err = cache.Exists(ctx, hash)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !ok {
		t.Fatal("expected stored preview to exist")
	}
}

func TestStoreOverwritesExistingPreview(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cache := testsupport.MustOpenPreviewCache(t, cfg)
	ctx := context.Background()

	hash := hashOf('b')
	if _, err := cache.Store(ctx, hash, []byte("first")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if _, err := cache.Store(ctx, hash, []byte("second!")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	entries, err := cache.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].Size != int64(len("second!")) {
		t.Fatalf("size = %d, want %d", entries[0].Size, len("second!"))
	}
}

func TestExistsDropsRowsForMissingFiles(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cache := testsupport.MustOpenPreviewCache(t, cfg)
	ctx := context.Background()

	hash := hashOf('c')
	path, err := cache.Store(ctx, hash, []byte("x"))
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}

	ok, err := cache.Exists(ctx, hash)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if ok {
		t.Fatal("expected preview with missing file to be reported absent")
	}
	entries, err := cache.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected stale row to be dropped, got %d entries", len(entries))
	}
}

func TestInvalidHashRejected(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cache := testsupport.MustOpenPreviewCache(t, cfg)
	ctx := context.Background()

	for _, hash := range []string{"", "abc", strings.Repeat("G", 64), "../" + hashOf('a')[3:]} {
		if _, err := cache.Store(ctx, hash, nil); !errors.Is(err, previewcache.ErrInvalidHash) {
			t.Fatalf("Store(%q) error = %v, want ErrInvalidHash", hash, err)
		}
		if _, err := cache.Exists(ctx, hash); !errors.Is(err, previewcache.ErrInvalidHash) {
			t.Fatalf("Exists(%q) error = %v, want ErrInvalidHash", hash, err)
		}
	}
}

func TestClearReturnsDeletedCount(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cache := testsupport.MustOpenPreviewCache(t, cfg)
	ctx := context.Background()

	for _, c := range []byte("abc") {
		if _, err := cache.Store(ctx, hashOf(c), []byte("img")); err != nil {
			t.Fatalf("Store failed: %v", err)
		}
	}
	// An orphaned preview file without an index row is cleared too.
	orphan := filepath.Join(cfg.Paths.PreviewDir, previewcache.FileName(hashOf('d')))
	if err := os.WriteFile(orphan, []byte("img"), 0o644); err != nil {
		t.Fatalf("write orphan: %v", err)
	}
	unrelated := filepath.Join(cfg.Paths.PreviewDir, "notes.txt")
	if err := os.WriteFile(unrelated, []byte("keep"), 0o644); err != nil {
		t.Fatalf("write unrelated: %v", err)
	}

	deleted, err := cache.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if deleted != 4 {
		t.Fatalf("deleted = %d, want 4", deleted)
	}
	if _, err := os.Stat(unrelated); err != nil {
		t.Fatalf("expected unrelated file to survive: %v", err)
	}
	entries, err := cache.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty index after clear, got %d", len(entries))
	}

	deleted, err = cache.Clear(ctx)
	if err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("second clear deleted %d, want 0", deleted)
	}
}

func TestPruneKeepsCurrentFingerprints(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cache := testsupport.MustOpenPreviewCache(t, cfg)
	ctx := context.Background()

	for _, c := range []byte("abcd") {
		if _, err := cache.Store(ctx, hashOf(c), []byte("img")); err != nil {
			t.Fatalf("Store failed: %v", err)
		}
	}
	keep := map[string]struct{}{hashOf('b'): {}, hashOf('d'): {}}

	deleted, err := cache.Prune(ctx, keep)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("deleted = %d, want 2", deleted)
	}

	entries, err := cache.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	var got []string
	for _, entry := range entries {
		got = append(got, entry.Hash)
	}
	sort.Strings(got)
	if diff := cmp.Diff([]string{hashOf('b'), hashOf('d')}, got); diff != "" {
		t.Fatalf("remaining previews mismatch (-want +got):\n%s", diff)
	}
}

func TestPruneDropsRowsForMissingFiles(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cache := testsupport.MustOpenPreviewCache(t, cfg)
	ctx := context.Background()

	for _, c := range []byte("ab") {
		if _, err := cache.Store(ctx, hashOf(c), []byte("img")); err != nil {
			t.Fatalf("Store failed: %v", err)
		}
	}
	if err := os.Remove(cache.Path(hashOf('a'))); err != nil {
		t.Fatalf("remove preview: %v", err)
	}

	deleted, err := cache.Prune(ctx, map[string]struct{}{hashOf('b'): {}})
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("deleted = %d, want 0", deleted)
	}

	entries, err := cache.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Hash != hashOf('b') {
		t.Fatalf("expected only the kept preview to remain, got %+v", entries)
	}
}

func TestReopenKeepsIndex(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	first := testsupport.MustOpenPreviewCache(t, cfg)
	if _, err := first.Store(ctx, hashOf('e'), []byte("img")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second := testsupport.MustOpenPreviewCache(t, cfg)
	ok, err := second.Exists(ctx, hashOf('e'))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !ok {
		t.Fatal("expected preview to survive reopen")
	}
}
