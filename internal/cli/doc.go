// Package cli defines the ticklist command tree.
//
// Running ticklist with no subcommand starts the TUI. The subcommands (add,
// list, toggle, edit, rm, clear-completed) open the same storage, run one
// state.Store operation and print the resulting rows followed by the
// remaining count. `ticklist log` prints the tail of the log file the TUI
// writes. Item ids may be abbreviated to any unique prefix.
package cli
