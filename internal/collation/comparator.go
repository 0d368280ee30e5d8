package collation

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"dualpresenter/internal/roster"
)

// DefaultLocale is the collation locale used when none is configured.
const DefaultLocale = "el"

// Comparator is a locale-aware total order over name strings. A collator
// keeps internal buffers, so access is serialized; one Comparator may be
// shared by every screen.
type Comparator struct {
	mu       sync.Mutex
	collator *collate.Collator
	tag      language.Tag
}

// New returns a comparator for tag.
func New(tag language.Tag) *Comparator {
	return &Comparator{
		collator: collate.New(tag),
		tag:      tag,
	}
}

// ForLocale parses a BCP 47 locale and returns its comparator. An empty
// locale selects DefaultLocale.
func ForLocale(locale string) (*Comparator, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return New(tag), nil
}

// Greek returns the default Greek comparator.
func Greek() *Comparator {
	return New(language.Greek)
}

// Locale returns the collation locale.
func (c *Comparator) Locale() language.Tag {
	return c.tag
}

// Compare returns -1, 0 or 1 as a sorts before, equal to, or after b.
func (c *Comparator) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.collator.CompareString(a, b)
}

// CompareNames orders names by collation, then by ascending ID.
func (c *Comparator) CompareNames(a, b roster.Name) int {
	if r := c.Compare(a.Name, b.Name); r != 0 {
		return r
	}
	return cmp.Compare(a.ID, b.ID)
}

// SortNames returns a sorted copy of names.
func (c *Comparator) SortNames(names []roster.Name) []roster.Name {
	sorted := slices.Clone(names)
	slices.SortStableFunc(sorted, c.CompareNames)
	return sorted
}

// InRange reports whether value lies in the inclusive range [from, until].
func (c *Comparator) InRange(value, from, until string) bool {
	return c.Compare(value, from) >= 0 && c.Compare(value, until) <= 0
}
