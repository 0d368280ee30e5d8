// Package namefilter decides which roster names appear on which card.
//
// A Names card with an explicit from/until range shows the attending names of
// its group inside that inclusive range. Unranged cards share the names left
// between their nearest ranged neighbours: ResolveSegment finds the run of
// unranged cards and the exclusive alphabetic window around it, and
// Distribute splits the window's names evenly across the run, giving the
// remainder to the earliest cards.
//
// All functions are pure. Inputs are never mutated and every result is a
// fresh slice, so a single Filter may serve both screens at once.
package namefilter
