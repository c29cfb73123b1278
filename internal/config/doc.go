// Package config loads jobsheet's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/jobsheet/config.toml
//  3. If the file doesn't exist, use Default()
//  4. Blank or missing fields keep their defaults
//
// # TOML Format
//
//	theme = "Slate"
//	seed_file = "~/jobs.toml"
//	log_file = "~/.local/state/jobsheet/jobsheet.log"  # "" disables logging
//	blank_rows = 20
//	title = "Spreadsheet style"
//	breadcrumbs = ["Workspace", "Folder 2", "Spreadsheet 3"]
//	notifications = 2
//
//	[user]
//	name = "John Doe"
//	email = "john@doe"
//
//	[[tabs]]
//	id = "q3-overview"
//	label = "Q3 Financial Overview"
//
//	[[bottom_tabs]]
//	id = "all-orders"
//	label = "All Orders"
//
// Paths starting with ~ are expanded to the home directory and made absolute.
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML, a negative
// blank_rows, and tab entries with an empty or duplicate id. A missing file
// is not an error.
package config
