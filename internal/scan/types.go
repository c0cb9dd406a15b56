package scan

// Severity represents the severity level of a finding.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityRank returns a numeric rank for sorting (higher = more severe).
func SeverityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// MeetsThreshold returns true if severity is at or above the threshold.
func MeetsThreshold(s Severity, threshold string) bool {
	if threshold == "none" || threshold == "" {
		return false
	}
	return SeverityRank(s) >= SeverityRank(Severity(threshold))
}

// Category represents the type of finding.
type Category string

const (
	CategorySecurity     Category = "security"
	CategoryStyle        Category = "style"
	CategoryMaintenance  Category = "maintenance"
	CategoryBestPractice Category = "best-practice"
	CategoryPotentialBug Category = "potential-bug"
)

// Rating is the coarse per-file verdict derived from issue counts.
type Rating string

const (
	RatingGood           Rating = "good"
	RatingNeedsAttention Rating = "needs-attention"
	RatingPoor           Rating = "poor"
	RatingNeutral        Rating = "neutral"
)

// Finding is one detected issue or suggestion. Line is 1-based and relative
// to the patch text, not the original file; 0 means no line information.
type Finding struct {
	Category    Category `json:"category"`
	Severity    Severity `json:"severity"`
	Line        int      `json:"line,omitempty"`
	Description string   `json:"description"`
}

// FileReview holds the analysis result for a single changed file. Issues are
// security findings and high/critical structural problems; everything milder
// lands in Suggestions.
type FileReview struct {
	Filename    string    `json:"filename"`
	Rating      Rating    `json:"rating"`
	Summary     string    `json:"summary"`
	Issues      []Finding `json:"issues"`
	Suggestions []Finding `json:"suggestions"`
}

// SecurityIssueCount returns the number of security-category issues.
func (r FileReview) SecurityIssueCount() int {
	n := 0
	for _, f := range r.Issues {
		if f.Category == CategorySecurity {
			n++
		}
	}
	return n
}

// HighSeverityIssueCount returns the number of issues rated high or critical.
func (r FileReview) HighSeverityIssueCount() int {
	n := 0
	for _, f := range r.Issues {
		if SeverityRank(f.Severity) >= SeverityRank(SeverityHigh) {
			n++
		}
	}
	return n
}
