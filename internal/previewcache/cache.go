package previewcache

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"dualpresenter/internal/fileutil"
	"dualpresenter/internal/logging"
)

//go:embed schema.sql
var schemaSQL string

const (
	schemaVersion = 1
	databaseName  = "previews.db"
	filePrefix    = "slide_preview_"
	fileSuffix    = ".png"

	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
)

var (
	// ErrInvalidHash is returned for keys that are not slide fingerprints.
	ErrInvalidHash = errors.New("invalid preview hash")
	// ErrSchemaMismatch indicates the database was created by another version.
	ErrSchemaMismatch = errors.New("schema version mismatch")
)

// Entry describes one cached preview.
type Entry struct {
	Hash      string
	Path      string
	Size      int64
	CreatedAt time.Time
}

// Cache manages preview images and their SQLite index.
type Cache struct {
	db     *sql.DB
	dir    string
	logger *slog.Logger
	now    func() time.Time
}

// Open initializes or connects to the preview cache in dir.
func Open(ctx context.Context, dir string, logger *slog.Logger) (*Cache, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("preview directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create preview directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, databaseName))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout = 5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}

	cache := &Cache{
		db:     db,
		dir:    dir,
		logger: logging.NewComponentLogger(logger, "previewcache"),
		now:    time.Now,
	}
	if err := cache.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return cache, nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Dir returns the preview directory.
func (c *Cache) Dir() string {
	return c.dir
}

// FileName returns the file name used for hash.
func FileName(hash string) string {
	return filePrefix + hash + fileSuffix
}

// Path returns where the preview for hash is stored.
func (c *Cache) Path(hash string) string {
	return filepath.Join(c.dir, FileName(hash))
}

// Exists reports whether a preview for hash is cached. Renderers check it
// before drawing a slide. An index row whose file has disappeared is removed.
func (c *Cache) Exists(ctx context.Context, hash string) (bool, error) {
	if err := validateHash(hash); err != nil {
		return false, err
	}
	var count int
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM previews WHERE hash = ?", hash).Scan(&count); err != nil {
		return false, fmt.Errorf("lookup preview: %w", err)
	}
	if count == 0 {
		return false, nil
	}
	if _, err := os.Stat(c.Path(hash)); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("stat preview: %w", err)
		}
		c.logger.Debug("dropping stale preview index row", logging.String("hash", hash))
		if err := c.exec(ctx, "DELETE FROM previews WHERE hash = ?", hash); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

// Store writes png as the preview for hash and returns its path. Renderers
// call it after drawing a slide that Exists reported missing.
func (c *Cache) Store(ctx context.Context, hash string, png []byte) (string, error) {
	if err := validateHash(hash); err != nil {
		return "", err
	}
	path := c.Path(hash)
	if err := fileutil.WriteFileAtomic(path, png, 0o644); err != nil {
		return "", fmt.Errorf("write preview: %w", err)
	}
	err := c.exec(ctx,
		`INSERT INTO previews (hash, file_name, size_bytes, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(hash) DO UPDATE SET file_name = excluded.file_name, size_bytes = excluded.size_bytes, created_at = excluded.created_at`,
		hash, FileName(hash), len(png), c.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return "", err
	}
	c.logger.Debug("stored slide preview", logging.String("hash", hash), logging.Int("size_bytes", len(png)))
	return path, nil
}

// List returns every indexed preview, newest first.
func (c *Cache) List(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx, "SELECT hash, size_bytes, created_at FROM previews ORDER BY created_at DESC, hash")
	if err != nil {
		return nil, fmt.Errorf("list previews: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry   Entry
			created string
		)
		if err := rows.Scan(&entry.Hash, &entry.Size, &created); err != nil {
			return nil, fmt.Errorf("scan preview: %w", err)
		}
		entry.Path = c.Path(entry.Hash)
		if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
			entry.CreatedAt = ts
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Clear deletes every preview image in the directory, indexed or not, and
// returns how many files were removed.
func (c *Cache) Clear(ctx context.Context) (int, error) {
	files, err := c.previewFiles()
	if err != nil {
		return 0, err
	}
	deleted := 0
	for _, name := range files {
		if err := os.Remove(filepath.Join(c.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return deleted, fmt.Errorf("remove preview %s: %w", name, err)
		}
		deleted++
	}
	if err := c.exec(ctx, "DELETE FROM previews"); err != nil {
		return deleted, err
	}
	c.logger.Info("cleared slide previews", logging.Int("deleted", deleted))
	return deleted, nil
}

// Prune deletes previews whose hash is not in keep and returns how many
// files were removed.
func (c *Cache) Prune(ctx context.Context, keep map[string]struct{}) (int, error) {
	files, err := c.previewFiles()
	if err != nil {
		return 0, err
	}
	deleted := 0
	for _, name := range files {
		hash := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
		if _, ok := keep[hash]; ok {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return deleted, fmt.Errorf("remove preview %s: %w", name, err)
		}
		if err := c.exec(ctx, "DELETE FROM previews WHERE hash = ?", hash); err != nil {
			return deleted, err
		}
		deleted++
	}
	if err := c.pruneIndex(ctx, keep); err != nil {
		return deleted, err
	}
	if deleted > 0 {
		c.logger.Info("pruned stale slide previews", logging.Int("deleted", deleted), logging.Int("kept", len(keep)))
	}
	return deleted, nil
}

// pruneIndex drops index rows outside keep whose image was already gone.
func (c *Cache) pruneIndex(ctx context.Context, keep map[string]struct{}) error {
	rows, err := c.db.QueryContext(ctx, "SELECT hash FROM previews")
	if err != nil {
		return fmt.Errorf("list preview hashes: %w", err)
	}
	var stale []string
	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			rows.Close()
			return fmt.Errorf("scan preview hash: %w", err)
		}
		if _, ok := keep[hash]; !ok {
			stale = append(stale, hash)
		}
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return fmt.Errorf("list preview hashes: %w", err)
	}
	for _, hash := range stale {
		if err := c.exec(ctx, "DELETE FROM previews WHERE hash = ?", hash); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cache) previewFiles() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("read preview directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func (c *Cache) initSchema(ctx context.Context) error {
	var tableExists int
	err := c.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		tx, err := c.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin schema tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()
		if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return tx.Commit()
	}

	var version int
	if err := c.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (run 'dualpresenter previews clear' and delete %s)",
			ErrSchemaMismatch, version, schemaVersion, databaseName)
	}
	return nil
}

func (c *Cache) exec(ctx context.Context, query string, args ...any) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		_, lastErr = c.db.ExecContext(ctx, query, args...)
		if lastErr == nil || !isSQLiteBusy(lastErr) {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay *= 2
	}
	if lastErr != nil {
		return fmt.Errorf("preview index: %w", lastErr)
	}
	return nil
}

func isSQLiteBusy(err error) bool {
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func validateHash(hash string) error {
	if len(hash) != 64 {
		return fmt.Errorf("%w: %q", ErrInvalidHash, hash)
	}
	for _, r := range hash {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			return fmt.Errorf("%w: %q", ErrInvalidHash, hash)
		}
	}
	return nil
}
