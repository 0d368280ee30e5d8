// Package deckio reads and writes the CSV exports of the presentation
// workbook: cards.csv (the deck sheet) and names.csv (the roster sheet).
//
// Both sheets start with a header row. Record ids are assigned from row
// order starting at 1, matching how the workbook is numbered. Card rows with
// an unknown type are dropped and logged rather than failing the load.
package deckio
