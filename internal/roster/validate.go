package roster

import (
	"fmt"
	"sort"
)

// CompareFunc orders two strings, returning -1, 0 or 1.
type CompareFunc func(a, b string) int

// IssueKind classifies a deck authoring problem.
type IssueKind string

const (
	IssuePartialRange  IssueKind = "partial_range"
	IssueInvertedRange IssueKind = "inverted_range"
	IssueOverlap       IssueKind = "overlapping_range"
	IssueMissingGroup  IssueKind = "missing_group"
	IssueDuplicateID   IssueKind = "duplicate_id"
)

// Issue describes one problem found by ValidateDeck.
type Issue struct {
	Kind    IssueKind
	CardID  int
	OtherID int
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("card %d: %s", i.CardID, i.Message)
}

// ValidateDeck reports authoring problems in cards. It never modifies the
// deck; overlapping ranges are reported, not resolved.
func ValidateDeck(cards []Card, compare CompareFunc) []Issue {
	var issues []Issue
	seen := make(map[int]struct{}, len(cards))
	for _, card := range cards {
		if _, dup := seen[card.ID]; dup {
			issues = append(issues, Issue{Kind: IssueDuplicateID, CardID: card.ID, Message: "duplicate card id"})
		}
		seen[card.ID] = struct{}{}

		if card.Type != CardNames {
			continue
		}
		if card.Group == "" {
			issues = append(issues, Issue{Kind: IssueMissingGroup, CardID: card.ID, Message: "names card has no group and will show nothing"})
		}
		if card.PartialRange() {
			issues = append(issues, Issue{
				Kind:    IssuePartialRange,
				CardID:  card.ID,
				Message: fmt.Sprintf("only one of from/until is set (from=%q until=%q); treated as unranged", card.From, card.Until),
			})
		}
		if card.Ranged() && compare != nil && compare(card.From, card.Until) > 0 {
			issues = append(issues, Issue{
				Kind:    IssueInvertedRange,
				CardID:  card.ID,
				Message: fmt.Sprintf("from %q sorts after until %q; the card matches no names", card.From, card.Until),
			})
		}
	}
	if compare != nil {
		issues = append(issues, overlappingRanges(cards, compare)...)
	}
	return issues
}

func overlappingRanges(cards []Card, compare CompareFunc) []Issue {
	byGroup := make(map[string][]Card)
	var groups []string
	for _, card := range cards {
		if card.Type != CardNames || card.Group == "" || !card.Ranged() {
			continue
		}
		if _, ok := byGroup[card.Group]; !ok {
			groups = append(groups, card.Group)
		}
		byGroup[card.Group] = append(byGroup[card.Group], card)
	}

	var issues []Issue
	for _, group := range groups {
		ranged := byGroup[group]
		sort.SliceStable(ranged, func(i, j int) bool { return ranged[i].ID < ranged[j].ID })
		for i := 0; i < len(ranged); i++ {
			for j := i + 1; j < len(ranged); j++ {
				a, b := ranged[i], ranged[j]
				if compare(a.From, b.Until) <= 0 && compare(b.From, a.Until) <= 0 {
					issues = append(issues, Issue{
						Kind:    IssueOverlap,
						CardID:  b.ID,
						OtherID: a.ID,
						Message: fmt.Sprintf("range [%s, %s] overlaps card %d [%s, %s] in group %q", b.From, b.Until, a.ID, a.From, a.Until, group),
					})
				}
			}
		}
	}
	return issues
}
