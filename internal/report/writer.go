package report

import (
	"fmt"
	"io"
	"os"
)

// Renderer writes a ReviewSet in a specific format.
type Renderer interface {
	Write(w io.Writer, set *ReviewSet) error
}

// GetRenderer returns a renderer for the named format. Unrecognized names
// fall back to the default markdown renderer.
func GetRenderer(format string) Renderer {
	switch format {
	case "json":
		return &JSONRenderer{}
	case "text":
		return NewTextRenderer()
	default:
		return &MarkdownRenderer{}
	}
}

// WriteReport writes the set to the given output path, or stdout when the
// path is empty.
func WriteReport(set *ReviewSet, format, outPath string) error {
	renderer := GetRenderer(format)

	var w io.Writer
	if outPath != "" {
		// File output is never decorated
		if tr, ok := renderer.(*TextRenderer); ok {
			tr.Color = false
		}
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return renderer.Write(w, set)
}
