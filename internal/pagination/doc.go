// Package pagination splits resolved name lists into display pages and keeps
// the page index each screen is showing.
//
// Paginate, Clamp, Next and Prev are pure. Tracker holds the page index for
// every (screen, card, role) key; it is owned by the caller, has no locking,
// and resets an index to the first page when the card's fingerprint changes.
package pagination
