package session_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/gofrs/flock"

	"dualpresenter/internal/logging"
	"dualpresenter/internal/session"
	"dualpresenter/internal/testsupport"
)

func newStore(t *testing.T) *session.Store {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store, err := session.NewStore(cfg.Paths.StateFile, logging.NewNop())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return store
}

func TestLoadMissingFileReturnsFreshState(t *testing.T) {
	store := newStore(t)
	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if state.SessionID == "" || state.CurrentSlide != 0 || state.Freeze {
		t.Fatalf("unexpected fresh state %+v", state)
	}
}

func TestUpdatePersistsState(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	first, err := store.Update(ctx, func(s *session.State) error {
		s.GotoSlide(3, 10)
		s.ToggleFreeze()
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	second, err := store.Update(ctx, func(s *session.State) error {
		s.NextSlide(10)
		s.ToggleBlackOut()
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if second.SessionID != first.SessionID {
		t.Fatalf("session id changed: %q -> %q", first.SessionID, second.SessionID)
	}
	if second.CurrentSlide != 4 || !second.Freeze || second.FrozenSlide != 3 {
		t.Fatalf("unexpected state %+v", second)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.CurrentSlide != 4 || loaded.FrozenSlide != 3 || !loaded.BlackOut {
		t.Fatalf("unexpected reloaded state %+v", loaded)
	}
}

func TestUpdateErrorLeavesFileUntouched(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, session.State{SessionID: "fixed", CurrentSlide: 1}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	boom := errors.New("boom")
	if _, err := store.Update(ctx, func(s *session.State) error {
		s.CurrentSlide = 9
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("Update error = %v, want boom", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.CurrentSlide != 1 || loaded.SessionID != "fixed" {
		t.Fatalf("unexpected state after failed update %+v", loaded)
	}
}

func TestUpdateReportsLockedSession(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	// Create the state directory before taking the competing lock.
	if err := store.Save(ctx, session.NewState()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	other := flock.New(store.Path() + ".lock")
	ok, err := other.TryLock()
	if err != nil || !ok {
		t.Fatalf("competing lock failed: ok=%v err=%v", ok, err)
	}
	defer func() { _ = other.Unlock() }()

	_, err = store.Update(ctx, func(*session.State) error { return nil })
	if !errors.Is(err, session.ErrLocked) {
		t.Fatalf("Update error = %v, want ErrLocked", err)
	}
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	store := newStore(t)
	if err := store.Save(context.Background(), session.NewState()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := os.WriteFile(store.Path(), []byte("current_slide = [oops"), 0o644); err != nil {
		t.Fatalf("write corrupt state: %v", err)
	}
	if _, err := store.Load(); err == nil {
		t.Fatal("expected parse error for corrupt state")
	}
}
