package presentation

import (
	"dualpresenter/internal/pagination"
	"dualpresenter/internal/roster"
)

// ShowsOn reports whether card is displayed on screen.
func ShowsOn(card roster.Card, screen pagination.Screen) bool {
	switch card.Display {
	case roster.DisplayMainOnly:
		return screen == pagination.ScreenMain
	case roster.DisplaySideOnly:
		return screen == pagination.ScreenSide
	default:
		return true
	}
}

// ScreenCard returns the card a screen shows when the presenter is at deck
// position index. A card targeted at the other screen leaves this screen on
// the nearest earlier card it does show.
func (e *Engine) ScreenCard(screen pagination.Screen, index int) (roster.Card, bool) {
	if index >= len(e.cards) {
		index = len(e.cards) - 1
	}
	for i := index; i >= 0; i-- {
		if ShowsOn(e.cards[i], screen) {
			return e.cards[i], true
		}
	}
	return roster.Card{}, false
}

// ScreenView is what one screen displays.
type ScreenView struct {
	Screen    pagination.Screen
	Slide     Slide
	PageIndex int
	Page      []roster.Name
}

// View resolves the slide and current page for screen at deck position
// index. Page indices come from tracker and are reset when the slide's
// fingerprint changed since they were recorded.
func (e *Engine) View(screen pagination.Screen, index int, tracker *pagination.Tracker) (ScreenView, bool) {
	card, ok := e.ScreenCard(screen, index)
	if !ok {
		return ScreenView{}, false
	}
	slide := e.slides[card.ID]
	view := ScreenView{Screen: screen, Slide: slide, Page: []roster.Name{}}
	if slide.Role == "" || tracker == nil {
		view.Page, view.PageIndex = pagination.Page(slide.Pages, 0)
		return view, true
	}
	key := pagination.Key{Screen: screen, CardID: card.ID, Role: slide.Role}
	current := tracker.Current(key, slide.Fingerprint, slide.PageCount())
	view.Page, view.PageIndex = pagination.Page(slide.Pages, current)
	return view, true
}

// TurnPage moves the page of the slide shown on screen by delta and returns
// the updated view. Slides without names are left unchanged.
func (e *Engine) TurnPage(screen pagination.Screen, index, delta int, tracker *pagination.Tracker) (ScreenView, bool) {
	view, ok := e.View(screen, index, tracker)
	if !ok || view.Slide.Role == "" || tracker == nil {
		return view, ok
	}
	key := pagination.Key{Screen: screen, CardID: view.Slide.Card.ID, Role: view.Slide.Role}
	next := tracker.Move(key, view.Slide.Fingerprint, delta, view.Slide.PageCount())
	view.Page, view.PageIndex = pagination.Page(view.Slide.Pages, next)
	return view, true
}
