package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"dualpresenter/internal/presentation"
	"dualpresenter/internal/roster"
)

const fingerprintPreview = 12

func cardLabel(card roster.Card) string {
	parts := []string{string(card.Type)}
	if card.Title != "" {
		parts = append(parts, card.Title)
	}
	label := strings.Join(parts, ": ")
	if card.Group != "" {
		label += " [" + card.Group + "]"
	}
	return label
}

func rangeLabel(card roster.Card) string {
	switch {
	case card.Ranged():
		return card.From + " .. " + card.Until
	case card.PartialRange():
		return "partial"
	case card.IsNames():
		return "distributed"
	default:
		return ""
	}
}

// precedenceLabel returns the card's precedence. Names cards without one fall
// back to the configured names precedence.
func precedenceLabel(card roster.Card, namesPrecedence int) string {
	switch {
	case card.Precedence != nil:
		return strconv.Itoa(*card.Precedence)
	case card.Type == roster.CardNames:
		return strconv.Itoa(namesPrecedence)
	default:
		return ""
	}
}

func shortFingerprint(fp string) string {
	if len(fp) <= fingerprintPreview {
		return fp
	}
	return fp[:fingerprintPreview]
}

func slideRows(slides []presentation.Slide, current, namesPrecedence int) [][]string {
	rows := make([][]string, 0, len(slides))
	for i, slide := range slides {
		marker := ""
		if i == current {
			marker = ">"
		}
		names := ""
		pages := ""
		if slide.Role != "" {
			names = strconv.Itoa(len(slide.Names))
			pages = strconv.Itoa(slide.PageCount())
		}
		rows = append(rows, []string{
			marker,
			strconv.Itoa(slide.Card.ID),
			string(slide.Card.Type),
			slide.Card.Title,
			slide.Card.Group,
			rangeLabel(slide.Card),
			string(slide.Card.Display),
			precedenceLabel(slide.Card, namesPrecedence),
			names,
			pages,
			shortFingerprint(slide.Fingerprint),
		})
	}
	return rows
}

var slideHeaders = []string{"", "ID", "Type", "Title", "Group", "Range", "Display", "Prec", "Names", "Pages", "Fingerprint"}
var slideAligns = []columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft}

// writeView prints what one screen shows.
func writeView(out io.Writer, view presentation.ScreenView) {
	card := view.Slide.Card
	fmt.Fprintf(out, "%s: #%d %s", view.Screen, card.ID, cardLabel(card))
	if card.Subtitle != "" {
		fmt.Fprintf(out, " (%s)", card.Subtitle)
	}
	if view.Slide.Role == "" {
		fmt.Fprintln(out)
		return
	}
	pageCount := view.Slide.PageCount()
	if pageCount == 0 {
		fmt.Fprintln(out, " - no names")
		return
	}
	fmt.Fprintf(out, " - page %d/%d\n", view.PageIndex+1, pageCount)
	for _, name := range view.Page {
		fmt.Fprintf(out, "  %s\n", name.Name)
	}
}

func writeNoView(out io.Writer, screen string) {
	fmt.Fprintf(out, "%s: (blank)\n", screen)
}
