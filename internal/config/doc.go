// Package config loads ticklist's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/ticklist/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	data_dir = "~/.local/share/ticklist"
//	backend = "file"          # file | sqlite | memory
//	storage_key = "todo-app:v1"
//	log_level = "info"
//	theme = "Nightfox"
//
// All fields are optional. Tilde expansion is performed on data_dir.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than a
// missing file, TOML parse errors and unknown backends. A missing file is
// not an error.
package config
