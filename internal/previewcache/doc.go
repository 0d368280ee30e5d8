// Package previewcache stores rendered slide preview images keyed by slide
// fingerprint.
//
// Images live as slide_preview_<hash>.png files in the preview directory and
// are indexed in a SQLite database (previews.db) alongside them. Because a
// fingerprint changes whenever anything visible on a slide changes, a cached
// image is valid exactly when its key is still produced by the current deck;
// Prune drops the rest.
package previewcache
