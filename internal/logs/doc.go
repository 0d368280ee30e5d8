// Package logs reads the dualpresenter log file for `dualpresenter logs`.
//
// Last returns the trailing lines with bounded memory; Follow polls for
// appended lines until its context ends and restarts from the top when the
// file is truncated or rotated.
package logs
