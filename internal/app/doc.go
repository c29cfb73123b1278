// Package app is the composition root for jobsheet.
//
// Run loads the TOML config and saved preferences, opens the log file,
// reads the seed records (or uses the built-in set), builds the record
// store and hands everything to the Bubble Tea UI, which blocks until the
// user quits or the context is cancelled.
//
// Startup failures are returned wrapped so main can print them:
//
//   - config file present but invalid
//   - log file not writable
//   - seed file missing, malformed or holding duplicate ids
//
// Theme precedence is the --theme flag, then the config file, then the
// theme saved in prefs by the last session.
package app
