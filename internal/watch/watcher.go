package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"dualpresenter/internal/logging"
)

const (
	defaultDebounce = 500 * time.Millisecond
	minTick         = 10 * time.Millisecond
)

// ChangeFunc receives the base names of files that settled after a change.
type ChangeFunc func(ctx context.Context, changed []string) error

// Options configures a Watcher.
type Options struct {
	Dir      string
	Files    []string
	Debounce time.Duration
	Logger   *slog.Logger
	OnChange ChangeFunc
}

// Stats counts watcher activity.
type Stats struct {
	Events    int
	Reloads   int
	Errors    int
	LastEvent time.Time
}

// Watcher debounces filesystem events for a fixed set of files in one
// directory.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	dir      string
	files    map[string]struct{}
	debounce time.Duration
	onChange ChangeFunc
	logger   *slog.Logger
	pending  map[string]time.Time
	stats    Stats
	running  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// New validates opts and creates the underlying fsnotify watcher.
func New(opts Options) (*Watcher, error) {
	if opts.Dir == "" {
		return nil, errors.New("watch directory is required")
	}
	if len(opts.Files) == 0 {
		return nil, errors.New("at least one file to watch is required")
	}
	if opts.OnChange == nil {
		return nil, errors.New("change callback is required")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	files := make(map[string]struct{}, len(opts.Files))
	for _, name := range opts.Files {
		files[filepath.Base(name)] = struct{}{}
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Watcher{
		watcher:  fsw,
		dir:      opts.Dir,
		files:    files,
		debounce: debounce,
		onChange: opts.OnChange,
		logger:   logging.NewComponentLogger(opts.Logger, "watch"),
		pending:  make(map[string]time.Time),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info("watching data files", logging.String("dir", w.dir), logging.Duration("debounce", w.debounce))

	go w.run(ctx)
	return nil
}

// Stop ends the event loop and releases the fsnotify watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("failed to close watcher", logging.Error(err))
	}
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	w.Stop()
	return nil
}

// Stats returns a snapshot of the activity counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounce / 5
	if tick < minTick {
		tick = minTick
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", logging.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	name := filepath.Base(event.Name)
	if _, ok := w.files[name]; !ok {
		return
	}
	now := time.Now()
	w.mu.Lock()
	w.pending[name] = now
	w.stats.Events++
	w.stats.LastEvent = now
	w.mu.Unlock()
	w.logger.Debug("data file event", logging.String("file", name), logging.String("op", event.Op.String()))
}

// flush delivers pending files once every one of them has been quiet for the
// debounce window.
func (w *Watcher) flush(ctx context.Context) {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	now := time.Now()
	for _, seen := range w.pending {
		if now.Sub(seen) < w.debounce {
			w.mu.Unlock()
			return
		}
	}
	changed := make([]string, 0, len(w.pending))
	for name := range w.pending {
		changed = append(changed, name)
	}
	clear(w.pending)
	w.stats.Reloads++
	w.mu.Unlock()

	sort.Strings(changed)
	if err := w.onChange(ctx, changed); err != nil {
		w.logger.Warn("reload failed",
			logging.Error(err),
			logging.String(logging.FieldEventType, "reload_failed"),
			logging.String(logging.FieldErrorHint, "fix the data file and save it again"),
		)
		w.mu.Lock()
		w.stats.Errors++
		w.mu.Unlock()
	}
}
