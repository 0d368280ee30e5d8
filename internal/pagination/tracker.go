package pagination

import (
	"fmt"
	"sort"
	"strings"
)

// Screen identifies one of the two physical displays.
type Screen string

const (
	ScreenMain Screen = "main"
	ScreenSide Screen = "side"
)

// ParseScreen maps value onto a screen.
func ParseScreen(value string) (Screen, error) {
	switch Screen(strings.ToLower(strings.TrimSpace(value))) {
	case ScreenMain:
		return ScreenMain, nil
	case ScreenSide:
		return ScreenSide, nil
	default:
		return "", fmt.Errorf("unknown screen %q (want main or side)", value)
	}
}

// Role distinguishes the names and unattended pagers of a screen.
type Role string

const (
	RoleNames      Role = "names"
	RoleUnattended Role = "unattended"
)

// Key addresses one page counter.
type Key struct {
	Screen Screen
	CardID int
	Role   Role
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%d/%s", k.Screen, k.CardID, k.Role)
}

// Entry is the stored state of one page counter.
type Entry struct {
	Index       int
	Fingerprint string
}

// Tracker stores page indices per key. The zero value is ready to use. It is
// not safe for concurrent use.
type Tracker struct {
	entries map[Key]Entry
}

// NewTracker returns a tracker seeded with entries.
func NewTracker(entries map[Key]Entry) *Tracker {
	t := &Tracker{entries: make(map[Key]Entry, len(entries))}
	for k, v := range entries {
		t.entries[k] = v
	}
	return t
}

// Current returns the page index for key. The stored index resets to 0 when
// fingerprint differs from the one it was recorded against, and is clamped to
// pageCount.
func (t *Tracker) Current(key Key, fingerprint string, pageCount int) int {
	entry, ok := t.lookup(key)
	if !ok || entry.Fingerprint != fingerprint {
		entry = Entry{Fingerprint: fingerprint}
	}
	entry.Index = Clamp(entry.Index, pageCount)
	t.store(key, entry)
	return entry.Index
}

// Move shifts the page index for key by delta, clamped. Moving past either
// end is a no-op.
func (t *Tracker) Move(key Key, fingerprint string, delta, pageCount int) int {
	current := t.Current(key, fingerprint, pageCount)
	return t.Set(key, fingerprint, current+delta, pageCount)
}

// Set stores a clamped page index for key.
func (t *Tracker) Set(key Key, fingerprint string, index, pageCount int) int {
	index = Clamp(index, pageCount)
	t.store(key, Entry{Index: index, Fingerprint: fingerprint})
	return index
}

// Reset drops every counter; used after a roster reload.
func (t *Tracker) Reset() {
	t.entries = nil
}

// Entries returns a copy of the stored counters.
func (t *Tracker) Entries() map[Key]Entry {
	out := make(map[Key]Entry, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}

// Keys returns the stored keys in a stable order.
func (t *Tracker) Keys() []Key {
	keys := make([]Key, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Screen != keys[j].Screen {
			return keys[i].Screen < keys[j].Screen
		}
		if keys[i].CardID != keys[j].CardID {
			return keys[i].CardID < keys[j].CardID
		}
		return keys[i].Role < keys[j].Role
	})
	return keys
}

func (t *Tracker) lookup(key Key) (Entry, bool) {
	if t.entries == nil {
		return Entry{}, false
	}
	entry, ok := t.entries[key]
	return entry, ok
}

func (t *Tracker) store(key Key, entry Entry) {
	if t.entries == nil {
		t.entries = make(map[Key]Entry)
	}
	t.entries[key] = entry
}
