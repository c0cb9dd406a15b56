package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/revet-dev/revet/internal/scan"
)

var (
	bannerStyle   = lipgloss.NewStyle().Bold(true)
	securityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
	goodStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
)

// TextRenderer outputs a human-readable plain-text report. Color is purely
// decorative ANSI wrapping; it never changes the textual content.
type TextRenderer struct {
	Color bool
}

// NewTextRenderer enables color only for an interactive terminal outside CI.
func NewTextRenderer() *TextRenderer {
	color := isatty.IsTerminal(os.Stdout.Fd()) &&
		os.Getenv("CI") == "" && os.Getenv("GITHUB_ACTIONS") == ""
	return &TextRenderer{Color: color}
}

func (t *TextRenderer) Write(w io.Writer, set *ReviewSet) error {
	ew := &errWriter{w: w}

	banner := fmt.Sprintf("revet code review — %s", set.Unit)
	if set.Target != "" {
		banner += " " + set.Target
	}
	ew.println(t.style(bannerStyle, banner))
	ew.println(strings.Repeat("─", 60))

	ew.printf("Files:       %d\n", set.Stats.TotalFiles)
	ew.printf("Issues:      %d\n", set.Stats.TotalIssues)
	ew.printf("Suggestions: %d\n", set.Stats.TotalSuggestions)
	sec := fmt.Sprintf("Security:    %d", set.Stats.TotalSecurityIssues)
	if set.Stats.TotalSecurityIssues > 0 {
		sec = t.style(securityStyle, sec)
	}
	ew.println(sec)
	ew.println(strings.Repeat("─", 60))

	ew.println("")
	ew.println(StripMarkup(set.Summary))

	for _, e := range set.Files {
		ew.printf("\n%s  [%s]\n", e.Review.Filename, e.Review.Rating)
		ew.printf("  %s\n", e.Review.Summary)
		for _, f := range e.Review.Issues {
			line := fmt.Sprintf("  [%s] %s", strings.ToUpper(string(f.Severity)), f.Description)
			if f.Category == scan.CategorySecurity {
				line = t.style(securityStyle, line)
			}
			ew.println(line)
		}
		for _, f := range e.Review.Suggestions {
			ew.println(t.style(faintStyle, "  - "+f.Description))
		}
	}

	if set.Stats.TotalIssues == 0 && set.Stats.TotalSuggestions == 0 {
		ew.println(t.style(goodStyle, "\nNo findings. Looks good!"))
	}

	return ew.err
}

func (t *TextRenderer) style(s lipgloss.Style, text string) string {
	if !t.Color {
		return text
	}
	return s.Render(text)
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
