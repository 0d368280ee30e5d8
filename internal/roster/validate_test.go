package roster

import (
	"strings"
	"testing"
)

func kinds(issues []Issue) map[IssueKind]int {
	out := make(map[IssueKind]int)
	for _, issue := range issues {
		out[issue.Kind]++
	}
	return out
}

func TestValidateDeckReportsProblems(t *testing.T) {
	cards := []Card{
		{ID: 1, Type: CardNames, Group: "G1", From: "Anna", Until: "Dora"},
		{ID: 2, Type: CardNames, Group: "G1", From: "Chris", Until: "Mary"},
		{ID: 3, Type: CardNames, Group: "G1", From: "Zoe"},
		{ID: 4, Type: CardNames, Group: "G2", From: "Paul", Until: "Bill"},
		{ID: 5, Type: CardNames},
		{ID: 5, Type: CardTitle},
	}

	got := kinds(ValidateDeck(cards, strings.Compare))
	want := map[IssueKind]int{
		IssueOverlap:       1,
		IssuePartialRange:  1,
		IssueInvertedRange: 1,
		IssueMissingGroup:  1,
		IssueDuplicateID:   1,
	}
	for kind, count := range want {
		if got[kind] != count {
			t.Fatalf("issue %s: got %d want %d (all: %v)", kind, got[kind], count, got)
		}
	}
}

func TestValidateDeckCleanDeck(t *testing.T) {
	cards := []Card{
		{ID: 1, Type: CardTitle, Title: "Welcome"},
		{ID: 2, Type: CardNames, Group: "G1", From: "Anna", Until: "Bob"},
		{ID: 3, Type: CardNames, Group: "G1"},
		{ID: 4, Type: CardNames, Group: "G1", From: "Chloe", Until: "Diana"},
		{ID: 5, Type: CardNames, Group: "G2", From: "Anna", Until: "Zoe"},
	}
	if issues := ValidateDeck(cards, strings.Compare); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestValidateDeckOverlapNamesBothCards(t *testing.T) {
	cards := []Card{
		{ID: 1, Type: CardNames, Group: "G", From: "A", Until: "M"},
		{ID: 2, Type: CardNames, Group: "G", From: "M", Until: "Z"},
	}
	issues := ValidateDeck(cards, strings.Compare)
	if len(issues) != 1 {
		t.Fatalf("expected one issue, got %v", issues)
	}
	if issues[0].CardID != 2 || issues[0].OtherID != 1 {
		t.Fatalf("unexpected overlap ids: %+v", issues[0])
	}
}
