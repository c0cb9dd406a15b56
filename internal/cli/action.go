package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/revet-dev/revet/internal/config"
	"github.com/revet-dev/revet/internal/github"
)

var actionCmd = &cobra.Command{
	Use:   "action",
	Short: "Run as a CI step against the triggering pull request",
	Long:  "Read the CI event payload (GITHUB_EVENT_PATH) to find the pull request, review it, and post the summary. Intended for GitHub Actions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		eventPath := os.Getenv("GITHUB_EVENT_PATH")
		if eventPath == "" {
			fmt.Fprintln(os.Stderr, "Error: GITHUB_EVENT_PATH is not set (not running in CI?)")
			exitCode = ExitError
			return nil
		}

		number, err := github.ReadEventPRNumber(eventPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitError
			return nil
		}

		owner, repo, ok := splitRepoArg(os.Getenv("GITHUB_REPOSITORY"))
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: GITHUB_REPOSITORY is not set or malformed")
			exitCode = ExitError
			return nil
		}

		runPRReview(context.Background(), cfg, owner, repo, number, true, false)
		return nil
	},
}

func init() {
	addOutputFlags(actionCmd)
}
