package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/revet-dev/revet/internal/diff"
	"github.com/revet-dev/revet/internal/scan"
)

// Analyzer turns one changed file into a FileReview. Both the pattern
// scanner and the LLM path satisfy this.
type Analyzer interface {
	Analyze(ctx context.Context, file diff.ChangedFile) (scan.FileReview, error)
	Name() string
}

// Result carries a per-file review plus a marker for whether the primary
// analyzer failed and the fallback produced the review instead.
type Result struct {
	Review   scan.FileReview
	Degraded bool
}

// AnalyzeWithFallback runs the primary analyzer and, on failure, degrades to
// the fallback for that file only. The fallback is expected to be the pattern
// scanner, which cannot fail; if it somehow does, its error propagates.
func AnalyzeWithFallback(ctx context.Context, primary, fallback Analyzer, file diff.ChangedFile) (Result, error) {
	review, err := primary.Analyze(ctx, file)
	if err == nil {
		return Result{Review: review}, nil
	}

	fmt.Fprintf(os.Stderr, "Warning: %s analysis failed for %s (%v), falling back to %s\n",
		primary.Name(), file.Filename, err, fallback.Name())

	review, err = fallback.Analyze(ctx, file)
	if err != nil {
		return Result{}, err
	}
	return Result{Review: review, Degraded: true}, nil
}
