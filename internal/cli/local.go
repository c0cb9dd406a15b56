package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/revet-dev/revet/internal/config"
	"github.com/revet-dev/revet/internal/diff"
	"github.com/revet-dev/revet/internal/report"
)

var (
	flagLocalDir     string
	flagLocalStaged  bool
	flagLocalBase    string
	flagLocalCompare string
)

var localCmd = &cobra.Command{
	Use:   "local",
	Short: "Review local working-tree changes",
	Long:  "Analyze the local git diff (working tree, staged changes, or a branch comparison) and render a review.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		runLocalReview(cfg)
		return nil
	},
}

func runLocalReview(cfg config.Config) {
	files, err := diff.LocalChanges(diff.LocalOptions{
		Dir:    flagLocalDir,
		Staged: flagLocalStaged,
		Base:   flagLocalBase,
		Head:   flagLocalCompare,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitError
		return
	}

	entries, err := analyzeFiles(context.Background(), cfg, files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitError
		return
	}

	target := describeLocalTarget()
	set := report.Aggregate(entries, report.UnitLocal, target, version)
	finishReview(set, cfg)
}

func describeLocalTarget() string {
	switch {
	case flagLocalBase != "":
		head := flagLocalCompare
		if head == "" {
			head = "HEAD"
		}
		return fmt.Sprintf("%s...%s", flagLocalBase, head)
	case flagLocalStaged:
		return "staged changes"
	default:
		return "working tree"
	}
}

// scanCmd is the security-focused local variant: same pipeline, but any
// critical-severity finding fails the run.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Security scan of local changes (fails on critical findings)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if flagFailOn == "" {
			flagFailOn = "critical"
		}
		runLocalReview(cfg)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{localCmd, scanCmd} {
		addOutputFlags(cmd)
		cmd.Flags().StringVar(&flagLocalDir, "dir", "", "Repository directory (default: current directory)")
		cmd.Flags().BoolVar(&flagLocalStaged, "staged", false, "Review staged changes only")
		cmd.Flags().StringVar(&flagLocalBase, "base", "", "Base branch/rev for comparison")
		cmd.Flags().StringVar(&flagLocalCompare, "compare", "", "Compare branch/rev (default: HEAD)")
	}
}
