package presentation

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"dualpresenter/internal/collation"
	"dualpresenter/internal/fingerprint"
	"dualpresenter/internal/logging"
	"dualpresenter/internal/namefilter"
	"dualpresenter/internal/pagination"
	"dualpresenter/internal/roster"
)

// ErrCardNotFound is returned when a card id is not part of the deck.
var ErrCardNotFound = errors.New("card not found")

// Options configures an Engine.
type Options struct {
	Names      []roster.Name
	Cards      []roster.Card
	Distribute bool
	PageSize   int
	Visual     fingerprint.Visual
	Comparator *collation.Comparator
	Logger     *slog.Logger
}

// Slide is a card with its resolved names, pages and fingerprint.
type Slide struct {
	Card        roster.Card
	Role        pagination.Role
	Names       []roster.Name
	Pages       [][]roster.Name
	Fingerprint string
}

// PageCount returns the number of name pages on the slide.
func (s Slide) PageCount() int {
	return len(s.Pages)
}

// Engine resolves slides for a roster and deck snapshot.
type Engine struct {
	filter *namefilter.Filter
	cards  []roster.Card
	slides map[int]Slide
	issues []roster.Issue
	logger *slog.Logger
}

// New resolves every slide of the deck. Deck validation problems are logged
// and kept available through Issues; they never prevent construction.
func New(opts Options) *Engine {
	logger := logging.NewComponentLogger(opts.Logger, "presentation")
	filter := namefilter.New(opts.Comparator)

	e := &Engine{
		filter: filter,
		cards:  slices.Clone(opts.Cards),
		slides: make(map[int]Slide, len(opts.Cards)),
		logger: logger,
	}

	filterOpts := namefilter.Options{AllCards: e.cards, Distribute: opts.Distribute}
	unattended := filter.Unattended(opts.Names)
	for _, card := range e.cards {
		slide := Slide{Card: card}
		switch card.Type {
		case roster.CardNames:
			slide.Role = pagination.RoleNames
			slide.Names = filter.ForCard(opts.Names, card, filterOpts)
		case roster.CardUnattended:
			slide.Role = pagination.RoleUnattended
			slide.Names = slices.Clone(unattended)
		default:
			slide.Names = []roster.Name{}
		}
		slide.Pages = pagination.Paginate(slide.Names, opts.PageSize)
		slide.Fingerprint = fingerprint.SlideHash(card, slide.Names, opts.Visual)
		e.slides[card.ID] = slide
	}

	e.issues = roster.ValidateDeck(e.cards, filter.Comparator().Compare)
	for _, issue := range e.issues {
		logger.Warn("deck issue",
			logging.String(logging.FieldEventType, "deck_"+string(issue.Kind)),
			logging.Int(logging.FieldCardID, issue.CardID),
			logging.String("detail", issue.Message))
	}
	logger.Debug("resolved deck",
		logging.Int("card_count", len(e.cards)),
		logging.Int("name_count", len(opts.Names)),
		logging.Int("unattended_count", len(unattended)),
		logging.Bool("distribute", opts.Distribute))
	return e
}

// Cards returns the deck in deck order.
func (e *Engine) Cards() []roster.Card {
	return slices.Clone(e.cards)
}

// Issues returns the deck validation problems found at construction.
func (e *Engine) Issues() []roster.Issue {
	return slices.Clone(e.issues)
}

// Slide returns the resolved slide for cardID.
func (e *Engine) Slide(cardID int) (Slide, error) {
	slide, ok := e.slides[cardID]
	if !ok {
		return Slide{}, fmt.Errorf("%w: %d", ErrCardNotFound, cardID)
	}
	return slide, nil
}

// Slides returns every slide in deck order.
func (e *Engine) Slides() []Slide {
	out := make([]Slide, 0, len(e.cards))
	for _, card := range e.cards {
		out = append(out, e.slides[card.ID])
	}
	return out
}

// Fingerprints returns the set of fingerprints produced by the deck.
func (e *Engine) Fingerprints() map[string]struct{} {
	out := make(map[string]struct{}, len(e.slides))
	for _, slide := range e.slides {
		out[slide.Fingerprint] = struct{}{}
	}
	return out
}
