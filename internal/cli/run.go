package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/revet-dev/revet/internal/config"
	"github.com/revet-dev/revet/internal/diff"
	"github.com/revet-dev/revet/internal/llm"
	"github.com/revet-dev/revet/internal/report"
	"github.com/revet-dev/revet/internal/scan"
)

// Shared flags across review commands
var (
	flagFormat string
	flagOut    string
	flagRules  string
	flagFailOn string
)

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (markdown, text, json)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&flagRules, "rules", "", "Rules override file (JSON or YAML)")
	cmd.Flags().StringVar(&flagFailOn, "fail-on", "", "Fail on severity threshold (none, low, medium, high, critical)")
}

// analyzeFiles runs the configured analysis strategy over the changed files,
// one at a time in input order.
func analyzeFiles(ctx context.Context, cfg config.Config, files []diff.ChangedFile) ([]report.FileEntry, error) {
	registry := scan.DefaultRegistry()
	if flagRules != "" {
		overrides, err := scan.LoadOverrides(flagRules)
		if err != nil {
			return nil, err
		}
		registry = registry.WithOverrides(overrides)
	}
	scanner := scan.NewScanner(registry)

	var primary llm.Analyzer
	if cfg.UseLLM() {
		var err error
		primary, err = llm.NewAnthropic(cfg.AnthropicKey, cfg.Model)
		if err != nil {
			return nil, err
		}
	}

	entries := make([]report.FileEntry, 0, len(files))
	for _, f := range files {
		var review scan.FileReview
		if primary != nil {
			res, err := llm.AnalyzeWithFallback(ctx, primary, scanner, f)
			if err != nil {
				return nil, err
			}
			review = res.Review
		} else {
			review = scanner.ScanFile(f)
		}
		entries = append(entries, report.FileEntry{File: f, Review: review})
	}
	return entries, nil
}

// finishReview renders the set and applies the fail-on threshold.
func finishReview(set *report.ReviewSet, cfg config.Config) {
	format := flagFormat
	if format == "" {
		format = cfg.Format
	}

	if err := report.WriteReport(set, format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitError
		return
	}

	failOn := flagFailOn
	if failOn == "" {
		failOn = cfg.FailOn
	}
	if set.HasSeverityAtOrAbove(failOn) {
		exitCode = ExitError
	}
}

func splitRepoArg(s string) (owner, repo string, ok bool) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
