package namefilter

import (
	"slices"

	"dualpresenter/internal/collation"
	"dualpresenter/internal/roster"
)

// Options controls how unranged Names cards are resolved.
type Options struct {
	// AllCards is the full deck; required for distribution.
	AllCards []roster.Card
	// Distribute enables sharing a group's names across unranged cards.
	Distribute bool
}

// Filter resolves name lists for cards using one comparator.
type Filter struct {
	cmp *collation.Comparator
}

// New returns a filter ordering names with cmp. A nil comparator selects the
// Greek default.
func New(cmp *collation.Comparator) *Filter {
	if cmp == nil {
		cmp = collation.Greek()
	}
	return &Filter{cmp: cmp}
}

// Comparator returns the filter's comparator.
func (f *Filter) Comparator() *collation.Comparator {
	return f.cmp
}

// ForCard returns the ordered names shown on card.
//
// Only Names cards with a group show names. A ranged card shows the group's
// attending names within [From, Until]. An unranged card shows its share of
// the names between its ranged neighbours when distribution is enabled, and
// nothing otherwise.
func (f *Filter) ForCard(names []roster.Name, card roster.Card, opts Options) []roster.Name {
	if !card.IsNames() {
		return []roster.Name{}
	}

	base := f.groupAttending(names, card.Group)

	if card.Ranged() {
		out := make([]roster.Name, 0, len(base))
		for _, name := range base {
			if f.cmp.InRange(name.Name, card.From, card.Until) {
				out = append(out, name)
			}
		}
		return out
	}

	if !opts.Distribute || len(opts.AllCards) == 0 {
		return []roster.Name{}
	}

	segment, ok := ResolveSegment(opts.AllCards, card)
	if !ok {
		return []roster.Name{}
	}
	pool := f.window(base, segment)
	return Distribute(pool, len(segment.Cards), segment.Position)
}

// Unattended returns every non-attending name regardless of group, sorted.
func (f *Filter) Unattended(names []roster.Name) []roster.Name {
	out := make([]roster.Name, 0, len(names))
	for _, name := range names {
		if !name.Attending {
			out = append(out, name)
		}
	}
	return f.cmp.SortNames(out)
}

// Pool returns the attending names of group that fall strictly inside the
// segment's window, sorted.
func (f *Filter) Pool(names []roster.Name, group string, segment Segment) []roster.Name {
	return f.window(f.groupAttending(names, group), segment)
}

func (f *Filter) groupAttending(names []roster.Name, group string) []roster.Name {
	out := make([]roster.Name, 0, len(names))
	for _, name := range names {
		if name.Group == group && name.Attending {
			out = append(out, name)
		}
	}
	return f.cmp.SortNames(out)
}

func (f *Filter) window(sorted []roster.Name, segment Segment) []roster.Name {
	return slices.DeleteFunc(slices.Clone(sorted), func(name roster.Name) bool {
		if segment.HasLower && f.cmp.Compare(name.Name, segment.Lower) <= 0 {
			return true
		}
		if segment.HasUpper && f.cmp.Compare(name.Name, segment.Upper) >= 0 {
			return true
		}
		return false
	})
}
