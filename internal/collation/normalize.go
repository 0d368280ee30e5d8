package collation

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeForSearch lowercases text with Greek casing rules, removes
// combining accents, and collapses whitespace.
func NormalizeForSearch(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	lowered := cases.Lower(language.Greek).String(text)
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripper, lowered)
	if err != nil {
		stripped = lowered
	}
	return strings.Join(strings.Fields(stripped), " ")
}

// MatchName reports whether name contains query once both are normalized.
// An empty query matches everything.
func MatchName(name, query string) bool {
	q := NormalizeForSearch(query)
	if q == "" {
		return true
	}
	return strings.Contains(NormalizeForSearch(name), q)
}
