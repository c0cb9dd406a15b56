package report

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/revet-dev/revet/internal/diff"
	"github.com/revet-dev/revet/internal/scan"
)

// Unit identifies the review scope: a hosted pull request or a local diff.
type Unit string

const (
	UnitPR    Unit = "pr"
	UnitLocal Unit = "local"
)

// FileEntry pairs a changed file with its analysis.
type FileEntry struct {
	File   diff.ChangedFile `json:"file"`
	Review scan.FileReview  `json:"analysis"`
}

// Stats holds the aggregate counts for a review unit.
type Stats struct {
	TotalFiles          int `json:"totalFiles"`
	TotalIssues         int `json:"totalIssues"`
	TotalSuggestions    int `json:"totalSuggestions"`
	TotalSecurityIssues int `json:"totalSecurityIssues"`
}

// ReviewSet is the full result of one review unit. Computed once after all
// files are scanned; read-only afterward.
type ReviewSet struct {
	Tool    string      `json:"tool"`
	Version string      `json:"version"`
	RunID   string      `json:"runId"`
	Unit    Unit        `json:"unit"`
	Target  string      `json:"target,omitempty"`
	Summary string      `json:"summary"`
	Stats   Stats       `json:"stats"`
	Files   []FileEntry `json:"files"`
}

// Aggregate combines per-file reviews, in input order, into a ReviewSet.
// Target names what was reviewed (a PR reference or a branch comparison).
func Aggregate(entries []FileEntry, unit Unit, target, version string) *ReviewSet {
	var stats Stats
	stats.TotalFiles = len(entries)
	for _, e := range entries {
		stats.TotalIssues += len(e.Review.Issues)
		stats.TotalSuggestions += len(e.Review.Suggestions)
		stats.TotalSecurityIssues += e.Review.SecurityIssueCount()
	}

	return &ReviewSet{
		Tool:    "revet",
		Version: version,
		RunID:   generateRunID(),
		Unit:    unit,
		Target:  target,
		Summary: buildNarrative(entries, stats, unit),
		Stats:   stats,
		Files:   entries,
	}
}

// buildNarrative produces the overall-summary text. Local units get the
// reduced form without the security callout and per-file breakdown.
func buildNarrative(entries []FileEntry, stats Stats, unit Unit) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyzed %d changed file(s): %d issue(s), %d suggestion(s).\n",
		stats.TotalFiles, stats.TotalIssues, stats.TotalSuggestions)

	if unit == UnitLocal {
		return strings.TrimRight(b.String(), "\n")
	}

	if stats.TotalSecurityIssues > 0 {
		fmt.Fprintf(&b, "\n**Warning:** %d security issue(s) detected. Review these before merging.\n",
			stats.TotalSecurityIssues)
	}

	var flagged []FileEntry
	for _, e := range entries {
		if len(e.Review.Issues) > 0 {
			flagged = append(flagged, e)
		}
	}
	if len(flagged) > 0 {
		b.WriteString("\n### Files with issues\n")
		for _, e := range flagged {
			fmt.Fprintf(&b, "- **%s** (%d issue(s))\n", e.Review.Filename, len(e.Review.Issues))
			for _, f := range e.Review.Issues {
				fmt.Fprintf(&b, "  - %s\n", f.Description)
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// HasSeverityAtOrAbove reports whether any issue in the set meets the
// threshold. Used for fail-on exit code decisions.
func (s *ReviewSet) HasSeverityAtOrAbove(threshold string) bool {
	for _, e := range s.Files {
		for _, f := range e.Review.Issues {
			if scan.MeetsThreshold(f.Severity, threshold) {
				return true
			}
		}
	}
	return false
}

func generateRunID() string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%d", time.Now().UnixNano())))
	return fmt.Sprintf("%x", h[:16])
}
