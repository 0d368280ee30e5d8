package testsupport

import (
	"testing"

	"dualpresenter/internal/config"
	"dualpresenter/internal/deckio"
	"dualpresenter/internal/roster"
)

// Attending builds attending names of group with ids starting at 1.
func Attending(group string, values ...string) []roster.Name {
	out := make([]roster.Name, len(values))
	for i, v := range values {
		out[i] = roster.Name{ID: i + 1, Name: v, Group: group, Attending: true}
	}
	return out
}

// NamesCard builds a Names card; empty from/until leave it unranged.
func NamesCard(id int, group, from, until string) roster.Card {
	return roster.Card{ID: id, Type: roster.CardNames, Group: group, From: from, Until: until, Display: roster.DisplayAuto}
}

// Labels returns the display labels of names.
func Labels(names []roster.Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.Name
	}
	return out
}

// WriteWorkbook writes cards and names into the config's data directory.
func WriteWorkbook(t testing.TB, cfg *config.Config, cards []roster.Card, names []roster.Name) {
	t.Helper()
	data := deckio.Data{Cards: cards, Names: names}
	if err := deckio.WriteFiles(cfg.Paths.DataDir, config.CardsFileName, config.NamesFileName, data); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
}
