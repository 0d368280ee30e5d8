// Package watch reloads the presentation when its data files change on disk.
//
// The watcher observes the data directory rather than the files themselves
// so editors that save through rename are still seen. Bursts of events are
// debounced and delivered as one callback naming the files that changed.
package watch
