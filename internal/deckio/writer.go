package deckio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"dualpresenter/internal/fileutil"
	"dualpresenter/internal/roster"
)

// WriteCards writes cards as a deck sheet. Ids are implied by row order.
func WriteCards(w io.Writer, cards []roster.Card) error {
	rows := make([][]string, 0, len(cards)+1)
	rows = append(rows, CardColumns)
	for _, card := range cards {
		precedence := ""
		if card.Precedence != nil {
			precedence = strconv.Itoa(*card.Precedence)
		}
		display := card.Display
		if display == "" {
			display = roster.DisplayAuto
		}
		rows = append(rows, []string{
			string(card.Type), card.Title, card.Subtitle, card.Group,
			card.From, card.Until, string(display), precedence,
		})
	}
	return writeRows(w, rows)
}

// WriteNames writes names as a roster sheet.
func WriteNames(w io.Writer, names []roster.Name) error {
	rows := make([][]string, 0, len(names)+1)
	rows = append(rows, NameColumns)
	for _, name := range names {
		attending := "No"
		if name.Attending {
			attending = "Yes"
		}
		rows = append(rows, []string{name.Name, name.Group, attending, name.Presenter})
	}
	return writeRows(w, rows)
}

// WriteFiles writes both sheets into dir, creating it when needed.
func WriteFiles(dir, cardsName, namesName string, data Data) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := fileutil.WriteAtomic(filepath.Join(dir, cardsName), 0o644, func(w io.Writer) error { return WriteCards(w, data.Cards) }); err != nil {
		return fmt.Errorf("write cards: %w", err)
	}
	if err := fileutil.WriteAtomic(filepath.Join(dir, namesName), 0o644, func(w io.Writer) error { return WriteNames(w, data.Names) }); err != nil {
		return fmt.Errorf("write names: %w", err)
	}
	return nil
}

// Template returns a small example workbook.
func Template() Data {
	return Data{
		Cards: []roster.Card{
			{ID: 1, Type: roster.CardTitle, Title: "Graduation Ceremony", Subtitle: "Class of 2026", Display: roster.DisplayBoth},
			{ID: 2, Type: roster.CardCategory, Title: "Computer Science", Display: roster.DisplayAuto},
			{ID: 3, Type: roster.CardNames, Title: "Computer Science", Group: "CS", From: "Α", Until: "Θ", Display: roster.DisplayAuto},
			{ID: 4, Type: roster.CardNames, Title: "Computer Science", Group: "CS", Display: roster.DisplayAuto},
			{ID: 5, Type: roster.CardUnattended, Title: "In absentia", Display: roster.DisplaySideOnly},
		},
		Names: []roster.Name{
			{ID: 1, Name: "Αλεξίου Μαρία", Group: "CS", Attending: true},
			{ID: 2, Name: "Κριεκούκης Παναγιώτης", Group: "CS", Attending: true},
			{ID: 3, Name: "Παπαδόπουλος Γιώργος", Group: "CS", Attending: false},
			{ID: 4, Name: "Ζαφειρίου Ελένη", Group: "CS", Attending: true},
		},
	}
}

func writeRows(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
