package roster

import (
	"fmt"
	"strings"
)

// CardType identifies what a card renders.
type CardType string

// Card types accepted in the deck sheet.
const (
	CardBlank      CardType = "Blank"
	CardCategory   CardType = "Category"
	CardTitle      CardType = "Title"
	CardNames      CardType = "Names"
	CardUnattended CardType = "Unattended"
	CardImage      CardType = "Image"
)

var cardTypes = []CardType{CardBlank, CardCategory, CardTitle, CardNames, CardUnattended, CardImage}

// ParseCardType matches value against the closed set of card types.
func ParseCardType(value string) (CardType, error) {
	trimmed := strings.TrimSpace(value)
	for _, ct := range cardTypes {
		if strings.EqualFold(trimmed, string(ct)) {
			return ct, nil
		}
	}
	return "", fmt.Errorf("unknown card type %q", value)
}

// DisplayTarget selects which screens show a card.
type DisplayTarget string

// Display targets as written in the deck sheet.
const (
	DisplayAuto     DisplayTarget = "Auto"
	DisplayMainOnly DisplayTarget = "Main Only"
	DisplaySideOnly DisplayTarget = "Side Only"
	DisplayBoth     DisplayTarget = "Both"
)

// ParseDisplayTarget maps value onto a display target. Unknown and empty
// values fall back to DisplayAuto.
func ParseDisplayTarget(value string) DisplayTarget {
	normalized := strings.ToLower(strings.Join(strings.Fields(value), " "))
	switch normalized {
	case "main only", "mainonly", "main":
		return DisplayMainOnly
	case "side only", "sideonly", "side":
		return DisplaySideOnly
	case "both":
		return DisplayBoth
	default:
		return DisplayAuto
	}
}

// Name is one roster entry. Group and Presenter are empty when absent.
type Name struct {
	ID        int
	Name      string
	Group     string
	Presenter string
	Attending bool
}

// Card is one slide definition. Empty strings mean the field is absent.
type Card struct {
	ID         int
	Type       CardType
	Title      string
	Subtitle   string
	Group      string
	From       string
	Until      string
	Display    DisplayTarget
	Precedence *int
}

// Ranged reports whether the card declares an explicit alphabetic range.
// A card with only one bound is treated as unranged.
func (c Card) Ranged() bool {
	return c.From != "" && c.Until != ""
}

// PartialRange reports whether exactly one of From and Until is set.
func (c Card) PartialRange() bool {
	return (c.From == "") != (c.Until == "")
}

// IsNames reports whether the card lists names of a group.
func (c Card) IsNames() bool {
	return c.Type == CardNames && c.Group != ""
}

// FindCard returns the card with the given id.
func FindCard(cards []Card, id int) (Card, bool) {
	for _, card := range cards {
		if card.ID == id {
			return card, true
		}
	}
	return Card{}, false
}

// IndexOf returns the deck position of the card with the given id, or -1.
func IndexOf(cards []Card, id int) int {
	for i, card := range cards {
		if card.ID == id {
			return i
		}
	}
	return -1
}
