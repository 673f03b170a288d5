// Command namesake is the CLI for matching music names across scripts.
//
// It scores two names against each other, shows how text is normalized and
// romanized, maintains a SQLite catalog of reference names, and identifies
// audio files by matching their tags against that catalog. Configuration is
// read from ~/.config/namesake/config.toml (or --config); logs go to stderr.
package main
