package llm

import (
	"fmt"
	"strings"

	"github.com/revet-dev/revet/internal/diff"
	"github.com/revet-dev/revet/internal/redact"
)

const systemPrompt = `You are a strict, expert code reviewer. You review one file's diff at a time and report quality and security problems.

Rules:
1. Only review the changes shown in the diff. Do not comment on unchanged code.
2. Focus on security issues, bugs, and maintainability. Avoid bikeshedding on style.
3. Be concise. One line per finding.

Structure your response with these sections:

Rating: good | needs-attention | poor

Summary:
<one or two sentences>

Issues:
- <each real problem, one per line>

Suggestions:
- <each minor improvement, one per line>

If the diff is clean, say so in the summary and leave the lists empty.`

func buildPrompts(file diff.ChangedFile) (system, user string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Review the diff for %s (%s", file.Filename, file.Status)
	if file.PreviousFilename != "" {
		fmt.Fprintf(&b, ", previously %s", file.PreviousFilename)
	}
	b.WriteString(").\n")

	b.WriteString("\n--- BEGIN DIFF ---\n")
	b.WriteString(redact.Secrets(file.Patch))
	b.WriteString("\n--- END DIFF ---\n")

	return systemPrompt, b.String()
}
