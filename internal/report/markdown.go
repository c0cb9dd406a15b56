package report

import (
	"io"
	"strings"

	"github.com/revet-dev/revet/internal/diff"
	"github.com/revet-dev/revet/internal/scan"
)

// MarkdownRenderer outputs the default lightweight-markup report.
type MarkdownRenderer struct{}

func (m *MarkdownRenderer) Write(w io.Writer, set *ReviewSet) error {
	ew := &errWriter{w: w}

	ew.println("# revet Code Review")
	ew.println("")
	writeSummaryTable(ew, set)
	ew.println(set.Summary)
	ew.println("")

	for _, e := range set.Files {
		ew.printf("## %s %s\n\n", statusGlyph(e.File.Status), e.Review.Filename)
		if e.File.PreviousFilename != "" {
			ew.printf("Renamed from `%s`\n\n", e.File.PreviousFilename)
		}
		ew.printf("`+%d, -%d` | %s\n\n", e.File.Additions, e.File.Deletions, ratingBadge(e.Review.Rating))
		ew.printf("%s\n\n", e.Review.Summary)

		if len(e.Review.Issues) > 0 {
			ew.println("**Issues:**")
			for _, f := range e.Review.Issues {
				ew.printf("- **[%s]** %s\n", strings.ToUpper(string(f.Severity)), f.Description)
			}
			ew.println("")
		}
		if len(e.Review.Suggestions) > 0 {
			ew.println("**Suggestions:**")
			for _, f := range e.Review.Suggestions {
				ew.printf("- %s\n", f.Description)
			}
			ew.println("")
		}
	}

	return ew.err
}

// RenderComment produces the reduced rendering used when posting feedback to
// GitHub: summary table and narrative only. Line-level comments are attached
// separately by the posting code.
func RenderComment(set *ReviewSet) string {
	var b strings.Builder
	ew := &errWriter{w: &b}

	ew.println("# revet Code Review")
	ew.println("")
	writeSummaryTable(ew, set)
	ew.println(set.Summary)

	return b.String()
}

func writeSummaryTable(ew *errWriter, set *ReviewSet) {
	ew.println("| Metric | Value |")
	ew.println("|--------|-------|")
	ew.printf("| Files analyzed | %d |\n", set.Stats.TotalFiles)
	ew.printf("| Issues | %d |\n", set.Stats.TotalIssues)
	ew.printf("| Suggestions | %d |\n", set.Stats.TotalSuggestions)
	ew.printf("| Security issues | %d |\n", set.Stats.TotalSecurityIssues)
	ew.println("")
}

func statusGlyph(status diff.FileStatus) string {
	switch status {
	case diff.StatusAdded:
		return ":new:"
	case diff.StatusDeleted:
		return ":wastebasket:"
	case diff.StatusModified:
		return ":pencil2:"
	case diff.StatusRenamed:
		return ":truck:"
	default:
		return ":grey_question:"
	}
}

func ratingBadge(r scan.Rating) string {
	switch r {
	case scan.RatingGood:
		return ":white_check_mark: Good"
	case scan.RatingNeedsAttention:
		return ":warning: Needs attention"
	case scan.RatingPoor:
		return ":x: Poor"
	default:
		return ":heavy_minus_sign: Neutral"
	}
}
