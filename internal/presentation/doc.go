// Package presentation turns a roster and a deck into the slides each screen
// shows.
//
// Engine resolves the names of every card (through namefilter), splits them
// into pages, and fingerprints each slide for the preview cache. It also
// decides which card a screen displays when the deck position lands on a
// card targeted at the other screen, so the main and side screens can show
// different slides. An Engine is immutable once built and safe for
// concurrent use by both screens.
package presentation
