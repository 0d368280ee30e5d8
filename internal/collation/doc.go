// Package collation orders roster names with locale-aware collation.
//
// Comparator wraps a golang.org/x/text collator (Greek by default) and
// breaks collation ties by roster ID so repeated sorts of the same roster
// always produce the same order. Every place that sorts names or tests them
// against a card's from/until bounds goes through a Comparator.
//
// NormalizeForSearch folds case and strips accents so operators can find
// "Παναγιώτης" by typing "παναγιωτης".
package collation
