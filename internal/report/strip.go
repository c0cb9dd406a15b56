package report

import (
	"regexp"
	"strings"
)

var (
	headingRe    = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	boldRe       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	linkRe       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	inlineCodeRe = regexp.MustCompile("`([^`]*)`")
	bulletPrefix = regexp.MustCompile(`(?m)^(\s*)[-*]\s+`)
)

// StripMarkup removes lightweight markup from text: heading markers, bold
// markers, link syntax (keeping the link text), inline code markers, and
// leading list bullets. Best-effort normalization, not a markup parser;
// nested or malformed markup may come through imperfectly.
func StripMarkup(text string) string {
	text = headingRe.ReplaceAllString(text, "")
	text = boldRe.ReplaceAllString(text, "$1")
	text = linkRe.ReplaceAllString(text, "$1")
	text = inlineCodeRe.ReplaceAllString(text, "$1")
	text = bulletPrefix.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
