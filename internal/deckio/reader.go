package deckio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"dualpresenter/internal/logging"
	"dualpresenter/internal/roster"
)

// CardColumns is the header of the deck sheet.
var CardColumns = []string{"type", "title", "subtitle", "group", "from", "until", "display", "precedence"}

// NameColumns is the header of the roster sheet.
var NameColumns = []string{"name", "group", "attending", "presenter"}

// Data is a loaded roster and deck.
type Data struct {
	Cards []roster.Card
	Names []roster.Name
}

// Load reads both sheets from disk.
func Load(cardsPath, namesPath string, logger *slog.Logger) (Data, error) {
	logger = logging.NewComponentLogger(logger, "deckio")

	cards, err := readFile(cardsPath, func(r io.Reader) ([]roster.Card, error) { return ReadCards(r, logger) })
	if err != nil {
		return Data{}, fmt.Errorf("load cards: %w", err)
	}
	names, err := readFile(namesPath, ReadNames)
	if err != nil {
		return Data{}, fmt.Errorf("load names: %w", err)
	}
	logger.Debug("loaded workbook",
		logging.Int("card_count", len(cards)),
		logging.Int("name_count", len(names)),
		logging.String("cards_path", cardsPath),
		logging.String("names_path", namesPath))
	return Data{Cards: cards, Names: names}, nil
}

func readFile[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return parse(file)
}

// ReadCards parses the deck sheet. Rows with an unknown card type are skipped
// but still consume an id, so ids keep matching sheet rows.
func ReadCards(r io.Reader, logger *slog.Logger) ([]roster.Card, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	cards := make([]roster.Card, 0, len(rows))
	for i, row := range rows {
		id := i + 1
		cardType, err := roster.ParseCardType(cell(row, 0))
		if err != nil {
			logger.Warn("skipping card row",
				logging.String(logging.FieldEventType, "card_type_invalid"),
				logging.Int("row", id),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "use Blank, Category, Title, Names, Unattended or Image"))
			continue
		}
		card := roster.Card{
			ID:       id,
			Type:     cardType,
			Title:    cell(row, 1),
			Subtitle: cell(row, 2),
			Group:    cell(row, 3),
			From:     cell(row, 4),
			Until:    cell(row, 5),
			Display:  roster.ParseDisplayTarget(cell(row, 6)),
		}
		if raw := cell(row, 7); raw != "" {
			value, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: precedence %q: %w", id, raw, err)
			}
			card.Precedence = &value
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// ReadNames parses the roster sheet.
func ReadNames(r io.Reader) ([]roster.Name, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	names := make([]roster.Name, 0, len(rows))
	for i, row := range rows {
		names = append(names, roster.Name{
			ID:        i + 1,
			Name:      cell(row, 0),
			Group:     cell(row, 1),
			Attending: parseAttending(cell(row, 2)),
			Presenter: cell(row, 3),
		})
	}
	return names, nil
}

func readRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, nil
}

func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

func parseAttending(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "1", "ναι":
		return true
	default:
		return false
	}
}
