// Package roster defines the name and card records a presentation is built from.
//
// Names come from the roster sheet and cards from the deck sheet. Both are
// plain values: they are replaced wholesale when the data files are reloaded
// and never mutated by the filtering, distribution, or pagination code.
// ValidateDeck reports authoring problems (partial or overlapping ranges)
// without rejecting the deck.
package roster
