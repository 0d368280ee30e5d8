package session

import (
	"github.com/google/uuid"

	"dualpresenter/internal/pagination"
)

// PageRecord is the persisted form of one pagination entry.
type PageRecord struct {
	Screen      string `toml:"screen"`
	CardID      int    `toml:"card_id"`
	Role        string `toml:"role"`
	Index       int    `toml:"index"`
	Fingerprint string `toml:"fingerprint"`
}

// State is the operator's presentation state. Slide positions are 0-based
// indices into the deck.
type State struct {
	SessionID    string       `toml:"session_id"`
	CurrentSlide int          `toml:"current_slide"`
	Freeze       bool         `toml:"freeze"`
	FrozenSlide  int          `toml:"frozen_slide"`
	BlackOut     bool         `toml:"black_out"`
	Pages        []PageRecord `toml:"pages"`
}

// NewState returns an empty state with a fresh session id.
func NewState() State {
	return State{SessionID: uuid.NewString()}
}

// Displayed returns the slide the screens should show. While frozen that is
// the slide current at the time of freezing.
func (s *State) Displayed() int {
	if s.Freeze {
		return s.FrozenSlide
	}
	return s.CurrentSlide
}

// NextSlide advances the current slide. It reports false at the last slide.
func (s *State) NextSlide(deckLen int) bool {
	if s.CurrentSlide+1 >= deckLen {
		return false
	}
	s.CurrentSlide++
	return true
}

// PrevSlide steps back. It reports false at the first slide.
func (s *State) PrevSlide() bool {
	if s.CurrentSlide <= 0 {
		return false
	}
	s.CurrentSlide--
	return true
}

// GotoSlide jumps to index, clamped to the deck.
func (s *State) GotoSlide(index, deckLen int) int {
	s.CurrentSlide = clampSlide(index, deckLen)
	return s.CurrentSlide
}

// ToggleFreeze flips the freeze flag and returns the new value. Freezing pins
// the current slide.
func (s *State) ToggleFreeze() bool {
	s.Freeze = !s.Freeze
	if s.Freeze {
		s.FrozenSlide = s.CurrentSlide
	} else {
		s.FrozenSlide = 0
	}
	return s.Freeze
}

// ToggleBlackOut flips the blackout flag and returns the new value. Both
// screens go blank while it is set; slide positions are left alone.
func (s *State) ToggleBlackOut() bool {
	s.BlackOut = !s.BlackOut
	return s.BlackOut
}

// Normalize clamps slide positions after the deck changed length.
func (s *State) Normalize(deckLen int) {
	s.CurrentSlide = clampSlide(s.CurrentSlide, deckLen)
	if s.Freeze {
		s.FrozenSlide = clampSlide(s.FrozenSlide, deckLen)
	}
}

// Tracker rebuilds the pagination tracker from the persisted records.
// Records with an unknown screen or role are skipped.
func (s *State) Tracker() *pagination.Tracker {
	entries := make(map[pagination.Key]pagination.Entry, len(s.Pages))
	for _, record := range s.Pages {
		screen, err := pagination.ParseScreen(record.Screen)
		if err != nil {
			continue
		}
		role := pagination.Role(record.Role)
		if role != pagination.RoleNames && role != pagination.RoleUnattended {
			continue
		}
		key := pagination.Key{Screen: screen, CardID: record.CardID, Role: role}
		entries[key] = pagination.Entry{Index: record.Index, Fingerprint: record.Fingerprint}
	}
	return pagination.NewTracker(entries)
}

// SetTracker replaces the persisted records with tracker's entries.
func (s *State) SetTracker(tracker *pagination.Tracker) {
	entries := tracker.Entries()
	records := make([]PageRecord, 0, len(entries))
	for _, key := range tracker.Keys() {
		entry := entries[key]
		records = append(records, PageRecord{
			Screen:      string(key.Screen),
			CardID:      key.CardID,
			Role:        string(key.Role),
			Index:       entry.Index,
			Fingerprint: entry.Fingerprint,
		})
	}
	s.Pages = records
}

func clampSlide(index, deckLen int) int {
	if deckLen <= 0 || index < 0 {
		return 0
	}
	if index >= deckLen {
		return deckLen - 1
	}
	return index
}
