// Revet reviews code changes for quality and security issues.
//
// It fetches changed files from a GitHub pull request or a local git
// workspace, scans each file's diff with a pattern-based rule engine
// (optionally LLM-assisted), and renders the aggregated review as markdown,
// plain text, or JSON.
//
// Usage:
//
//	revet pr 42 --owner acme --repo widgets   # review a pull request
//	revet pr 42 --post                        # ...and post the summary back
//	revet local --staged                      # review staged changes
//	revet local --base main                   # review a branch comparison
//	revet scan                                # security scan, fails on critical
//	revet setup                               # write .env.example
//	revet action                              # CI entry point (GitHub Actions)
//
// Configuration is read from the environment (and .env): GITHUB_TOKEN,
// ANTHROPIC_API_KEY, REVET_MODEL, REVET_FORMAT, REVET_FAIL_ON.
package main
