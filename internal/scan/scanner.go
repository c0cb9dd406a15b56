package scan

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/revet-dev/revet/internal/diff"
)

// Scanner applies the pattern registry to changed files. It is stateless
// across files; scanning never fails for malformed patch text.
type Scanner struct {
	registry *Registry
}

// NewScanner creates a scanner backed by the given registry.
func NewScanner(registry *Registry) *Scanner {
	return &Scanner{registry: registry}
}

// Name identifies the analysis strategy.
func (s *Scanner) Name() string { return "patterns" }

// Analyze satisfies the analyzer contract shared with the LLM path. The
// pattern scan is pure string work and cannot fail.
func (s *Scanner) Analyze(_ context.Context, file diff.ChangedFile) (FileReview, error) {
	return s.ScanFile(file), nil
}

var (
	catchOpenRe  = regexp.MustCompile(`\bcatch\s*(\([^)]*\))?\s*\{\s*$`)
	errCheckRe   = regexp.MustCompile(`if\s+err\s*!=\s*nil\s*\{\s*$`)
	closeBraceRe = regexp.MustCompile(`^[+\-\s]*\}\s*$`)
)

// ScanFile produces a FileReview for one changed file.
func (s *Scanner) ScanFile(file diff.ChangedFile) FileReview {
	if strings.TrimSpace(file.Patch) == "" {
		return FileReview{
			Filename: file.Filename,
			Rating:   RatingNeutral,
			Summary:  "no diff available",
		}
	}

	lines := strings.Split(file.Patch, "\n")

	var matches []RuleMatch
	for i, line := range lines {
		matches = append(matches, s.registry.Evaluate(line, i+1)...)
		matches = append(matches, lookaheadChecks(lines, i)...)
	}
	matches = append(matches, s.registry.EvaluatePatch(file.Filename, file.Patch)...)

	review := FileReview{Filename: file.Filename}
	for _, m := range matches {
		f := Finding{
			Category:    m.Rule.Category,
			Severity:    m.Rule.Severity,
			Line:        m.Line,
			Description: describe(m),
		}
		if isIssue(m.Rule) {
			review.Issues = append(review.Issues, f)
		} else {
			review.Suggestions = append(review.Suggestions, f)
		}
	}

	review.Summary = summarize(review)
	review.Rating = deriveRating(review, true)
	return review
}

// lookaheadChecks covers patterns that need exactly one line of context:
// an error-handling block whose body is empty.
func lookaheadChecks(lines []string, i int) []RuleMatch {
	if i+1 >= len(lines) {
		return nil
	}
	opens := catchOpenRe.MatchString(lines[i]) || errCheckRe.MatchString(lines[i])
	if !opens || !closeBraceRe.MatchString(lines[i+1]) {
		return nil
	}
	return []RuleMatch{{
		Rule: Rule{
			ID:       "empty-error-block",
			Name:     "empty error-handling block",
			Category: CategoryPotentialBug,
			Severity: SeverityMedium,
		},
		Line: i + 1,
	}}
}

// isIssue classifies a matched rule: security always counts as an issue;
// otherwise only high or critical severity does.
func isIssue(r Rule) bool {
	if r.Category == CategorySecurity {
		return true
	}
	return SeverityRank(r.Severity) >= SeverityRank(SeverityHigh)
}

func describe(m RuleMatch) string {
	if m.Line > 0 {
		return fmt.Sprintf("%s detected (line %d)", m.Rule.Name, m.Line)
	}
	return fmt.Sprintf("%s detected", m.Rule.Name)
}

func summarize(r FileReview) string {
	total := len(r.Issues) + len(r.Suggestions)
	if total == 0 {
		return "No issues found. Looks good!"
	}
	if high := r.HighSeverityIssueCount(); high > 0 {
		return fmt.Sprintf("%d high-severity issue(s) require attention", high)
	}
	return fmt.Sprintf("%d finding(s) to review", total)
}

// deriveRating maps issue presence to a verdict. Suggestions never affect the
// rating. The poor rating is reserved for the LLM verdict parser.
func deriveRating(r FileReview, hasPatch bool) Rating {
	if !hasPatch && len(r.Issues) == 0 {
		return RatingNeutral
	}
	if len(r.Issues) > 0 {
		return RatingNeedsAttention
	}
	return RatingGood
}
