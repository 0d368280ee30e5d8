// Package preflight provides readiness checks for the files and directories
// dualpresenter depends on.
//
// The CLI "dualpresenter doctor" command runs RunAll before a presentation
// to catch missing exports, unwritable directories and a stuck session lock
// while there is still time to fix them.
package preflight
