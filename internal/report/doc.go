// Package report aggregates per-file reviews into a ReviewSet and renders it.
//
// Three formats are supported:
//   - markdown: summary table, narrative, and per-file sections (default)
//   - text: human-readable terminal output, decorated only on a TTY
//   - json: full structured, round-trippable report
//
// [RenderComment] produces the reduced markdown used when posting the review
// back to GitHub: summary table and narrative only.
package report
