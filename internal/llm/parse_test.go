package llm

import (
	"testing"

	"github.com/revet-dev/revet/internal/scan"
)

const structuredResponse = `Rating: needs-attention

Summary:
The change introduces a hardcoded credential and an unchecked error.

Issues:
- Hardcoded API token committed to the repository
- Possible nil pointer dereference when the response body is empty

Suggestions:
- Extract the retry loop into a helper
- Consider caching the compiled regular expression for performance
`

func TestParseReview_Structured(t *testing.T) {
	review := ParseReview(structuredResponse)

	if review.Rating != scan.RatingNeedsAttention {
		t.Errorf("Rating = %q, want %q", review.Rating, scan.RatingNeedsAttention)
	}
	if review.Summary != "The change introduces a hardcoded credential and an unchecked error." {
		t.Errorf("Summary = %q", review.Summary)
	}
	if len(review.Issues) != 2 {
		t.Fatalf("Issues = %d, want 2", len(review.Issues))
	}
	if len(review.Suggestions) != 2 {
		t.Fatalf("Suggestions = %d, want 2", len(review.Suggestions))
	}

	// Keyword classification: "token" marks security, "nil pointer" a bug.
	if review.Issues[0].Category != scan.CategorySecurity || review.Issues[0].Severity != scan.SeverityHigh {
		t.Errorf("Issues[0] = %q/%q, want security/high", review.Issues[0].Category, review.Issues[0].Severity)
	}
	if review.Issues[1].Category != scan.CategoryPotentialBug || review.Issues[1].Severity != scan.SeverityMedium {
		t.Errorf("Issues[1] = %q/%q, want potential-bug/medium", review.Issues[1].Category, review.Issues[1].Severity)
	}
	if review.Suggestions[0].Category != scan.CategoryBestPractice || review.Suggestions[0].Severity != scan.SeverityLow {
		t.Errorf("Suggestions[0] = %q/%q, want best-practice/low", review.Suggestions[0].Category, review.Suggestions[0].Severity)
	}
	if review.Suggestions[1].Category != scan.CategoryMaintenance {
		t.Errorf("Suggestions[1].Category = %q, want maintenance", review.Suggestions[1].Category)
	}
}

func TestParseReview_MarkdownDecoratedSections(t *testing.T) {
	content := "**Rating:** Poor\n\n## Summary:\nRisky change overall.\n\n**Issues:**\n* Critical SQL injection in the query builder\n"
	review := ParseReview(content)

	if review.Rating != scan.RatingPoor {
		t.Errorf("Rating = %q, want %q", review.Rating, scan.RatingPoor)
	}
	if review.Summary != "Risky change overall." {
		t.Errorf("Summary = %q", review.Summary)
	}
	if len(review.Issues) != 1 {
		t.Fatalf("Issues = %d, want 1", len(review.Issues))
	}
	if review.Issues[0].Severity != scan.SeverityCritical {
		t.Errorf("Severity = %q, want critical (escalated by keyword)", review.Issues[0].Severity)
	}
	if review.Issues[0].Category != scan.CategorySecurity {
		t.Errorf("Category = %q, want security", review.Issues[0].Category)
	}
}

func TestParseReview_Unstructured(t *testing.T) {
	content := "This change looks reasonable to me.\nNothing stands out."
	review := ParseReview(content)

	if len(review.Issues) != 0 || len(review.Suggestions) != 0 {
		t.Errorf("unstructured prose should yield no findings, got %d/%d",
			len(review.Issues), len(review.Suggestions))
	}
	if review.Summary != "This change looks reasonable to me." {
		t.Errorf("Summary = %q, want first non-empty line", review.Summary)
	}
	if review.Rating != scan.RatingGood {
		t.Errorf("Rating = %q, want good (no issues)", review.Rating)
	}
}

func TestParseReview_RatingFallbackFromIssues(t *testing.T) {
	content := "Issues:\n- The loop leaks goroutines on cancel\n"
	review := ParseReview(content)

	if review.Rating != scan.RatingNeedsAttention {
		t.Errorf("Rating = %q, want needs-attention inferred from issues", review.Rating)
	}
}

func TestParseReview_NeedsAttentionSpaceVariant(t *testing.T) {
	review := ParseReview("Rating: Needs Attention\n")
	if review.Rating != scan.RatingNeedsAttention {
		t.Errorf("Rating = %q, want %q", review.Rating, scan.RatingNeedsAttention)
	}
}

func TestParseReview_Empty(t *testing.T) {
	review := ParseReview("")
	if review.Summary != "" {
		t.Errorf("Summary = %q, want empty", review.Summary)
	}
	if review.Rating != scan.RatingGood {
		t.Errorf("Rating = %q, want good", review.Rating)
	}
}
