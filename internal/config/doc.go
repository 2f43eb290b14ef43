// Package config loads gravplot's optional TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is passed with -config, use it
//  2. Otherwise, use ~/.config/gravplot/config.toml
//  3. A missing file yields Default()
//  4. Empty or whitespace-only fields keep their defaults
//
// # Fields
//
//	redraw_interval = "100ms"                        # UI redraw cadence, >= 10ms
//	snapshot_dir = "~/.local/share/gravplot/snapshots" # PNG snapshots
//	log_file = ""                                    # empty: no log in the TUI
//
// The tag and the window size are compile-time constants in package sample
// and cannot be configured.
package config
