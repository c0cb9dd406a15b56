package llm

import (
	"regexp"
	"strings"

	"github.com/revet-dev/revet/internal/scan"
)

var (
	ratingRe  = regexp.MustCompile(`(?im)^\s*\*{0,2}#{0,4}\s*rating\s*\*{0,2}\s*[:：]\s*\*{0,2}\s*(good|needs[- ]attention|poor|neutral)`)
	sectionRe = regexp.MustCompile(`(?im)^\s*\*{0,2}#{0,4}\s*(summary|issues|suggestions)\s*\*{0,2}\s*[:：]?\s*\*{0,2}\s*$`)
	bulletRe  = regexp.MustCompile(`^\s*[-*•]\s+(.*)$`)
)

// ParseReview extracts a FileReview from free-form model prose. The parse is
// best-effort: prose that doesn't follow the requested structure yields a
// review with empty findings, never an error.
func ParseReview(content string) scan.FileReview {
	review := scan.FileReview{}

	if m := ratingRe.FindStringSubmatch(content); m != nil {
		review.Rating = scan.Rating(strings.ReplaceAll(strings.ToLower(m[1]), " ", "-"))
	}

	sections := splitSections(content)

	if summary, ok := sections["summary"]; ok {
		review.Summary = strings.TrimSpace(strings.Join(summary, " "))
	}
	for _, line := range sections["issues"] {
		if text, ok := bulletText(line); ok {
			review.Issues = append(review.Issues, classifyLine(text, true))
		}
	}
	for _, line := range sections["suggestions"] {
		if text, ok := bulletText(line); ok {
			review.Suggestions = append(review.Suggestions, classifyLine(text, false))
		}
	}

	if review.Summary == "" {
		review.Summary = firstNonEmptyLine(content)
	}
	if review.Rating == "" {
		if len(review.Issues) > 0 {
			review.Rating = scan.RatingNeedsAttention
		} else {
			review.Rating = scan.RatingGood
		}
	}
	return review
}

func splitSections(content string) map[string][]string {
	sections := make(map[string][]string)
	var current string
	for _, line := range strings.Split(content, "\n") {
		if m := sectionRe.FindStringSubmatch(line); m != nil {
			current = strings.ToLower(m[1])
			continue
		}
		if current != "" {
			sections[current] = append(sections[current], line)
		}
	}
	return sections
}

func bulletText(line string) (string, bool) {
	if m := bulletRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), m[1] != ""
	}
	return "", false
}

// classifyLine keyword-scans one finding line for category and severity.
func classifyLine(text string, issue bool) scan.Finding {
	lower := strings.ToLower(text)

	f := scan.Finding{Description: text}
	switch {
	case containsAny(lower, "secur", "credential", "secret", "password", "token", "inject", "vulnerab"):
		f.Category = scan.CategorySecurity
		f.Severity = scan.SeverityHigh
	case containsAny(lower, "crash", "panic", "nil pointer", "race", "bug", "leak", "overflow"):
		f.Category = scan.CategoryPotentialBug
		f.Severity = scan.SeverityMedium
	case containsAny(lower, "performance", "slow", "o(n", "alloc"):
		f.Category = scan.CategoryMaintenance
		f.Severity = scan.SeverityMedium
	default:
		if issue {
			f.Category = scan.CategoryPotentialBug
			f.Severity = scan.SeverityMedium
		} else {
			f.Category = scan.CategoryBestPractice
			f.Severity = scan.SeverityLow
		}
	}

	if containsAny(lower, "critical", "severe") {
		f.Severity = scan.SeverityCritical
	}
	return f
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func firstNonEmptyLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
