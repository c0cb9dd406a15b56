// Package cli wires together the Cobra command tree for the revet binary.
//
// It defines the root command and all subcommands (pr, local, scan, action,
// setup, version), binds flags, reads configuration, runs the analysis
// pipeline, and returns deterministic exit codes for CI gating.
package cli
