package presentation_test

import (
	"testing"

	"dualpresenter/internal/pagination"
	"dualpresenter/internal/presentation"
	"dualpresenter/internal/roster"
	"dualpresenter/internal/testsupport"
)

func TestShowsOn(t *testing.T) {
	tests := []struct {
		display    roster.DisplayTarget
		main, side bool
	}{
		{roster.DisplayAuto, true, true},
		{roster.DisplayBoth, true, true},
		{roster.DisplayMainOnly, true, false},
		{roster.DisplaySideOnly, false, true},
	}
	for _, tt := range tests {
		card := roster.Card{Display: tt.display}
		if got := presentation.ShowsOn(card, pagination.ScreenMain); got != tt.main {
			t.Fatalf("%s on main = %v", tt.display, got)
		}
		if got := presentation.ShowsOn(card, pagination.ScreenSide); got != tt.side {
			t.Fatalf("%s on side = %v", tt.display, got)
		}
	}
}

func TestScreenCardOffsetsScreens(t *testing.T) {
	cards := []roster.Card{
		{ID: 1, Type: roster.CardTitle, Display: roster.DisplayBoth},
		{ID: 2, Type: roster.CardImage, Display: roster.DisplayMainOnly},
		{ID: 3, Type: roster.CardTitle, Display: roster.DisplaySideOnly},
		{ID: 4, Type: roster.CardBlank, Display: roster.DisplayAuto},
	}
	e := newEngine(nil, cards, 10)

	tests := []struct {
		index int
		main  int
		side  int
	}{
		{index: 0, main: 1, side: 1},
		{index: 1, main: 2, side: 1},
		{index: 2, main: 2, side: 3},
		{index: 3, main: 4, side: 4},
		{index: 9, main: 4, side: 4},
	}
	for _, tt := range tests {
		m, ok := e.ScreenCard(pagination.ScreenMain, tt.index)
		if !ok || m.ID != tt.main {
			t.Fatalf("index %d main = %d (%v), want %d", tt.index, m.ID, ok, tt.main)
		}
		s, ok := e.ScreenCard(pagination.ScreenSide, tt.index)
		if !ok || s.ID != tt.side {
			t.Fatalf("index %d side = %d (%v), want %d", tt.index, s.ID, ok, tt.side)
		}
	}
}

func TestScreenCardNothingVisible(t *testing.T) {
	cards := []roster.Card{{ID: 1, Type: roster.CardImage, Display: roster.DisplayMainOnly}}
	e := newEngine(nil, cards, 10)
	if _, ok := e.ScreenCard(pagination.ScreenSide, 0); ok {
		t.Fatal("side screen has nothing to show")
	}
	if _, ok := newEngine(nil, nil, 10).ScreenCard(pagination.ScreenMain, 0); ok {
		t.Fatal("empty deck has nothing to show")
	}
}

func TestViewAndTurnPageIndependentPerScreen(t *testing.T) {
	names := testsupport.Attending("G", "Anna", "Bob", "Chloe", "Diana", "Eve")
	cards := []roster.Card{testsupport.NamesCard(1, "G", "", "")}
	e := newEngine(names, cards, 2)
	tracker := pagination.NewTracker(nil)

	view, ok := e.TurnPage(pagination.ScreenMain, 0, 1, tracker)
	if !ok || view.PageIndex != 1 || testsupport.Labels(view.Page)[0] != "Chloe" {
		t.Fatalf("unexpected main view: %+v", view)
	}
	view, _ = e.TurnPage(pagination.ScreenMain, 0, 5, tracker)
	if view.PageIndex != 2 || len(view.Page) != 1 {
		t.Fatalf("turning past the end must clamp: %+v", view)
	}
	side, _ := e.View(pagination.ScreenSide, 0, tracker)
	if side.PageIndex != 0 {
		t.Fatalf("side screen must keep its own page, got %d", side.PageIndex)
	}

	reloaded := newEngine(append(names, roster.Name{ID: 6, Name: "Fay", Group: "G", Attending: true}), cards, 2)
	view, _ = reloaded.View(pagination.ScreenMain, 0, tracker)
	if view.PageIndex != 0 {
		t.Fatalf("page must reset after the name list changed, got %d", view.PageIndex)
	}
}

func TestViewSlideWithoutNames(t *testing.T) {
	cards := []roster.Card{{ID: 1, Type: roster.CardTitle, Title: "Hello"}}
	e := newEngine(nil, cards, 2)
	view, ok := e.TurnPage(pagination.ScreenMain, 0, 1, pagination.NewTracker(nil))
	if !ok || view.PageIndex != 0 || len(view.Page) != 0 {
		t.Fatalf("unexpected view: %+v", view)
	}
}
