// Package scan is the pattern-based analysis engine.
//
// A [Registry] is an ordered table of independent detection rules (credential
// shapes, risky constructs, and style/maintenance smells) evaluated one line
// of patch text at a time. [Scanner.ScanFile] applies the registry (plus a
// small set of one-line-lookahead checks) to a changed file and classifies
// matches into issues and suggestions: security findings are always issues,
// everything else is an issue only at high or critical severity.
//
// Rules packs (rules.go) can remap rule severities or disable rules by ID
// without touching scan control flow.
package scan
