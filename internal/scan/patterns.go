package scan

import (
	"regexp"
	"strings"
)

// maxLineLength is the threshold for the long-line style rule.
const maxLineLength = 120

// Rule is one entry in the pattern registry: a named, severity-tagged
// line matcher. Rules are independent of each other; registry order only
// fixes the order of matches within a single line.
type Rule struct {
	ID       string
	Name     string
	Category Category
	Severity Severity
	re       *regexp.Regexp
}

// Match reports whether the rule's pattern matches the line.
func (r Rule) Match(line string) bool {
	if r.re != nil {
		return r.re.MatchString(line)
	}
	return false
}

// RuleMatch pairs a matched rule with the line it matched on.
type RuleMatch struct {
	Rule Rule
	Line int
}

// defaultRules is the built-in detection table. Credential shapes follow the
// same heuristics used for secret redaction in diff tooling; the rest cover
// risky constructs and style/maintenance smells.
var defaultRules = []Rule{
	// Hardcoded credentials
	{
		ID:       "hardcoded-credential",
		Name:     "hardcoded credential",
		Category: CategorySecurity,
		Severity: SeverityHigh,
		re:       regexp.MustCompile(`(?i)(password|passwd|secret|api[_-]?key|apikey|token|credential)\s*[:=]\s*["'][^"']{4,}["']`),
	},
	{
		ID:       "aws-access-key",
		Name:     "AWS access key ID",
		Category: CategorySecurity,
		Severity: SeverityCritical,
		re:       regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	},
	{
		ID:       "github-token",
		Name:     "GitHub token",
		Category: CategorySecurity,
		Severity: SeverityCritical,
		re:       regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`),
	},
	{
		ID:       "slack-token",
		Name:     "Slack token",
		Category: CategorySecurity,
		Severity: SeverityCritical,
		re:       regexp.MustCompile(`xox[bporas]-[A-Za-z0-9-]{10,}`),
	},
	{
		ID:       "jwt-literal",
		Name:     "JWT literal",
		Category: CategorySecurity,
		Severity: SeverityHigh,
		re:       regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
	},
	{
		ID:       "anthropic-key",
		Name:     "Anthropic API key",
		Category: CategorySecurity,
		Severity: SeverityCritical,
		re:       regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`),
	},
	{
		ID:       "openai-key",
		Name:     "OpenAI API key",
		Category: CategorySecurity,
		Severity: SeverityCritical,
		re:       regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`),
	},
	{
		ID:       "private-key",
		Name:     "private key material",
		Category: CategorySecurity,
		Severity: SeverityCritical,
		re:       regexp.MustCompile(`-----BEGIN\s+(RSA\s+|EC\s+|OPENSSH\s+)?PRIVATE KEY-----`),
	},
	// Risky constructs
	{
		ID:       "dynamic-eval",
		Name:     "dynamic code execution",
		Category: CategorySecurity,
		Severity: SeverityHigh,
		re:       regexp.MustCompile(`\beval\s*\(|new\s+Function\s*\(`),
	},
	{
		ID:       "markup-injection",
		Name:     "unsanitized markup injection",
		Category: CategorySecurity,
		Severity: SeverityHigh,
		re:       regexp.MustCompile(`\.innerHTML\s*=|dangerouslySetInnerHTML`),
	},
	{
		ID:       "tls-verify-disabled",
		Name:     "certificate validation disabled",
		Category: CategorySecurity,
		Severity: SeverityHigh,
		re:       regexp.MustCompile(`InsecureSkipVerify\s*:\s*true|rejectUnauthorized\s*:\s*false|verify\s*=\s*False`),
	},
	{
		ID:       "weak-hash",
		Name:     "weak hash algorithm",
		Category: CategorySecurity,
		Severity: SeverityMedium,
		re:       regexp.MustCompile(`(?i)\b(md5|sha1)\s*\(|crypto/md5|crypto/sha1|createHash\(['"](md5|sha1)['"]\)`),
	},
	{
		ID:       "shell-construction",
		Name:     "shell command built from strings",
		Category: CategorySecurity,
		Severity: SeverityHigh,
		re:       regexp.MustCompile(`(child_process|exec\s*\(\s*["'].*["']\s*\+|os\.system\s*\(|subprocess\.(call|run|Popen)\s*\(.*shell\s*=\s*True)`),
	},
	// Style / maintenance
	{
		ID:       "debug-statement",
		Name:     "debug print statement",
		Category: CategoryStyle,
		Severity: SeverityLow,
		re:       regexp.MustCompile(`console\.(log|debug|trace)\s*\(|\bprint\s*\(|fmt\.Println\s*\(|System\.out\.println`),
	},
	{
		ID:       "marker-comment",
		Name:     "TODO/FIXME marker",
		Category: CategoryMaintenance,
		Severity: SeverityLow,
		re:       regexp.MustCompile(`(?i)//\s*(TODO|FIXME|HACK|XXX)|#\s*(TODO|FIXME|HACK|XXX)`),
	},
	{
		ID:       "unhandled-promise",
		Name:     "promise without rejection handler",
		Category: CategoryPotentialBug,
		Severity: SeverityMedium,
		re:       regexp.MustCompile(`\.then\s*\([^)]*\)\s*;?\s*$`),
	},
}

// extensionRules apply once to the whole patch of a matching file rather
// than per line.
var extensionRules = []struct {
	Rule       Rule
	Extensions []string
}{
	{
		Rule: Rule{
			ID:       "legacy-var",
			Name:     "legacy var declaration",
			Category: CategoryBestPractice,
			Severity: SeverityLow,
			re:       regexp.MustCompile(`(^|\n)\+[^\n]*\bvar\s+\w+\s*=`),
		},
		Extensions: []string{".js", ".jsx", ".ts", ".tsx", ".mjs"},
	},
}

// Registry is an ordered, immutable set of detection rules. The zero value
// is unusable; construct with DefaultRegistry.
type Registry struct {
	rules []Rule
}

// DefaultRegistry returns the built-in rule table.
func DefaultRegistry() *Registry {
	return &Registry{rules: defaultRules}
}

// Rules returns the rules in registry order.
func (g *Registry) Rules() []Rule {
	return g.rules
}

// Evaluate runs every rule against a single line and returns the matches in
// registry order. It is pure: no state survives between calls.
func (g *Registry) Evaluate(line string, lineNo int) []RuleMatch {
	var matches []RuleMatch
	for _, r := range g.rules {
		if r.Match(line) {
			matches = append(matches, RuleMatch{Rule: r, Line: lineNo})
		}
	}

	if len(line) > maxLineLength {
		matches = append(matches, RuleMatch{
			Rule: Rule{
				ID:       "long-line",
				Name:     "line exceeds length threshold",
				Category: CategoryStyle,
				Severity: SeverityLow,
			},
			Line: lineNo,
		})
	}

	return matches
}

// EvaluatePatch runs the extension-scoped rules once against the whole patch.
func (g *Registry) EvaluatePatch(filename, patch string) []RuleMatch {
	var matches []RuleMatch
	for _, er := range extensionRules {
		if !hasExtension(filename, er.Extensions) {
			continue
		}
		if er.Rule.Match(patch) {
			matches = append(matches, RuleMatch{Rule: er.Rule})
		}
	}
	return matches
}

func hasExtension(filename string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
