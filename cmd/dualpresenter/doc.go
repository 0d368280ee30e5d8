// Command dualpresenter drives a two-screen name presentation from CSV
// exports of the deck and roster sheets.
//
// Every command loads the configuration, resolves the deck through the
// presentation engine and prints the result. Operator state (current slide,
// freeze, page positions) persists in the session file between invocations;
// `dualpresenter watch` keeps the deck resolved while the data files are
// edited.
package main
