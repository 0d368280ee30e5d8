package namefilter

import (
	"slices"

	"dualpresenter/internal/roster"
)

// Segment is the run of unranged cards a target card belongs to, with the
// exclusive alphabetic window its names are drawn from.
type Segment struct {
	// Lower is the Until of the nearest earlier ranged card; names must sort
	// strictly after it. Ignored unless HasLower.
	Lower    string
	HasLower bool
	// Upper is the From of the nearest later ranged card; names must sort
	// strictly before it. Ignored unless HasUpper.
	Upper    string
	HasUpper bool
	// Cards are the consecutive unranged cards sharing the window, in deck
	// order.
	Cards []roster.Card
	// Position is the target card's index within Cards.
	Position int
}

// GroupCards returns the Names cards of group in ascending id order.
func GroupCards(allCards []roster.Card, group string) []roster.Card {
	out := make([]roster.Card, 0, len(allCards))
	for _, card := range allCards {
		if card.Type == roster.CardNames && card.Group == group {
			out = append(out, card)
		}
	}
	slices.SortStableFunc(out, func(a, b roster.Card) int { return a.ID - b.ID })
	return out
}

// ResolveSegment locates card within its group's Names cards and returns the
// segment it belongs to. It reports false when the card is not an unranged
// Names card present in allCards.
func ResolveSegment(allCards []roster.Card, card roster.Card) (Segment, bool) {
	if !card.IsNames() || card.Ranged() {
		return Segment{}, false
	}
	group := GroupCards(allCards, card.Group)
	k := slices.IndexFunc(group, func(c roster.Card) bool { return c.ID == card.ID })
	if k < 0 {
		return Segment{}, false
	}

	var seg Segment
	start := 0
	for i := k - 1; i >= 0; i-- {
		if group[i].Ranged() {
			seg.Lower, seg.HasLower = group[i].Until, true
			start = i + 1
			break
		}
	}
	end := len(group)
	for i := k + 1; i < len(group); i++ {
		if group[i].Ranged() {
			seg.Upper, seg.HasUpper = group[i].From, true
			end = i
			break
		}
	}

	seg.Cards = slices.Clone(group[start:end])
	seg.Position = k - start
	return seg, true
}
