// Package logtail reads the tail of ticklist's log file.
//
// The TUI owns the terminal, so warnings such as failed list saves go to
// <data_dir>/ticklist.log. Read returns the last N lines, optionally keeping
// only lines at or above a level, which `ticklist log` prints.
package logtail
