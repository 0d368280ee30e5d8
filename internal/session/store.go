package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"dualpresenter/internal/fileutil"
	"dualpresenter/internal/logging"
)

const (
	lockTimeout    = 2 * time.Second
	lockRetryDelay = 50 * time.Millisecond
)

// ErrLocked is returned when another process holds the session lock.
var ErrLocked = errors.New("session state is locked by another process")

// Store reads and writes the session state file.
type Store struct {
	path     string
	lockPath string
	lock     *flock.Flock
	logger   *slog.Logger
}

// NewStore returns a store for the state file at path.
func NewStore(path string, logger *slog.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("session state path is required")
	}
	lockPath := path + ".lock"
	return &Store{
		path:     path,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
		logger:   logging.NewComponentLogger(logger, "session"),
	}, nil
}

// Path returns the state file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the state file. A missing file yields a fresh state.
func (s *Store) Load() (State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewState(), nil
		}
		return State{}, fmt.Errorf("read session state: %w", err)
	}
	var state State
	if err := toml.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("parse session state %s: %w", s.path, err)
	}
	if state.SessionID == "" {
		state.SessionID = NewState().SessionID
	}
	return state, nil
}

// Save writes state under the session lock.
func (s *Store) Save(ctx context.Context, state State) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()
	return s.write(state)
}

// Update loads the state, applies fn and saves the result while holding the
// session lock. Nothing is written when fn fails.
func (s *Store) Update(ctx context.Context, fn func(*State) error) (State, error) {
	if err := s.acquire(ctx); err != nil {
		return State{}, err
	}
	defer s.release()

	state, err := s.Load()
	if err != nil {
		return State{}, err
	}
	if err := fn(&state); err != nil {
		return State{}, err
	}
	if err := s.write(state); err != nil {
		return State{}, err
	}
	s.logger.Debug("session state updated",
		logging.String("session_id", state.SessionID),
		logging.Int("current_slide", state.CurrentSlide),
		logging.Bool("freeze", state.Freeze),
	)
	return state, nil
}

func (s *Store) acquire(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.lockPath), 0o755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	ok, err := s.lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("acquire session lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, s.lockPath)
	}
	return nil
}

func (s *Store) release() {
	if err := s.lock.Unlock(); err != nil {
		s.logger.Warn("failed to release session lock",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "remove the .lock file if no other dualpresenter command is running"),
		)
	}
}

func (s *Store) write(state State) error {
	data, err := toml.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}
	if err := fileutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}
	return nil
}
