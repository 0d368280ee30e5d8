package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"sort"
	"strconv"

	"dualpresenter/internal/roster"
)

// Visual is the subset of the visual configuration that affects slides.
type Visual struct {
	Colors map[string]string
	Fonts  map[string]string
}

// SlideHash returns a hex SHA-256 digest of card, its resolved names and the
// visual configuration. Names are hashed in the given order.
func SlideHash(card roster.Card, names []roster.Name, visual Visual) string {
	hasher := sha256.New()

	writeComponent(hasher, "card")
	writeComponent(hasher, strconv.Itoa(card.ID))
	writeComponent(hasher, string(card.Type))
	writeOptional(hasher, card.Title)
	writeOptional(hasher, card.Subtitle)
	writeOptional(hasher, card.Group)
	writeOptional(hasher, card.From)
	writeOptional(hasher, card.Until)

	writeComponent(hasher, "names")
	writeComponent(hasher, strconv.Itoa(len(names)))
	for _, name := range names {
		writeComponent(hasher, strconv.Itoa(name.ID))
		writeComponent(hasher, name.Name)
	}

	writeMap(hasher, "colors", visual.Colors)
	writeMap(hasher, "fonts", visual.Fonts)

	return hex.EncodeToString(hasher.Sum(nil))
}

func writeMap(w io.Writer, label string, values map[string]string) {
	writeComponent(w, label)
	writeComponent(w, strconv.Itoa(len(values)))
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		writeComponent(w, key)
		writeComponent(w, values[key])
	}
}

// writeOptional marks whether a field is set. The empty string means unset,
// and a set value never hashes like an unset one, even the literal "-".
func writeOptional(w io.Writer, value string) {
	if value == "" {
		writeComponent(w, "-")
		return
	}
	writeComponent(w, "+"+value)
}

func writeComponent(w io.Writer, value string) {
	_, _ = io.WriteString(w, value)
	_, _ = w.Write([]byte{0})
}
