// Package app is the composition root for ticklist.
//
// Open wires the pieces in order:
//
//  1. config.Load reads ~/.config/ticklist/config.toml (defaults when missing)
//  2. command-line overrides replace the data dir and backend
//  3. a charmbracelet/log logger writes to the log file or the given writer
//  4. storage.Open selects the file, sqlite or memory backend
//  5. storage.Adapter and state.Store load the list
//
// Run adds the saved theme preference and hands the store to the TUI. The CLI
// uses Open directly and runs a single Store operation per invocation.
//
// Startup errors (bad config, unwritable data dir, backend open) are returned.
// Storage failures after startup are logged and never surface to the user.
package app
