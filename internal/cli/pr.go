package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/revet-dev/revet/internal/config"
	"github.com/revet-dev/revet/internal/github"
	"github.com/revet-dev/revet/internal/report"
)

var (
	flagPROwner   string
	flagPRRepo    string
	flagPRToken   string
	flagPRPost    bool
	flagPRApprove bool
)

var prCmd = &cobra.Command{
	Use:   "pr <number>",
	Short: "Review a GitHub pull request",
	Long:  "Fetch a pull request's changed files, analyze them, and render a review. With --post, the summary is posted back to the PR.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid PR number %q\n", args[0])
			exitCode = ExitError
			return nil
		}

		cfg := config.Load()
		if flagPRToken != "" {
			cfg.GitHubToken = flagPRToken
		}

		owner, repo := flagPROwner, flagPRRepo
		if owner == "" || repo == "" {
			detectedOwner, detectedRepo, err := github.DetectRepo()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\nUse --owner and --repo flags to specify manually.\n", err)
				exitCode = ExitError
				return nil
			}
			if owner == "" {
				owner = detectedOwner
			}
			if repo == "" {
				repo = detectedRepo
			}
		}

		ctx := context.Background()
		runPRReview(ctx, cfg, owner, repo, number, flagPRPost, flagPRApprove)
		return nil
	},
}

// runPRReview is the shared PR flow used by both `pr` and `action`.
func runPRReview(ctx context.Context, cfg config.Config, owner, repo string, number int, post, approve bool) {
	client, err := github.NewClient(ctx, cfg.GitHubToken, cfg.GitHubAPIURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitError
		return
	}

	fmt.Fprintf(os.Stderr, "Fetching PR #%d from %s/%s...\n", number, owner, repo)
	pr, err := client.GetPullRequest(ctx, owner, repo, number)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitError
		return
	}

	files, err := client.ListChangedFiles(ctx, owner, repo, number)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitError
		return
	}

	entries, err := analyzeFiles(ctx, cfg, files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitError
		return
	}

	target := fmt.Sprintf("%s/%s#%d (%s)", owner, repo, pr.Number, pr.Title)
	set := report.Aggregate(entries, report.UnitPR, target, version)

	if post {
		event := reviewEvent(set, approve)
		fmt.Fprintf(os.Stderr, "Posting %s review to PR #%d...\n", event, number)
		if err := client.PostReview(ctx, owner, repo, number, report.RenderComment(set), event, nil); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitError
			return
		}
	}

	finishReview(set, cfg)
}

// reviewEvent picks the posted review event: an explicit approval wins,
// security issues request changes, anything else is a plain comment.
func reviewEvent(set *report.ReviewSet, approve bool) string {
	if approve {
		return github.EventApprove
	}
	if set.Stats.TotalSecurityIssues > 0 {
		return github.EventRequestChanges
	}
	return github.EventComment
}

func init() {
	addOutputFlags(prCmd)
	prCmd.Flags().StringVar(&flagPROwner, "owner", "", "Repository owner (auto-detected if omitted)")
	prCmd.Flags().StringVar(&flagPRRepo, "repo", "", "Repository name (auto-detected if omitted)")
	prCmd.Flags().StringVar(&flagPRToken, "token", "", "GitHub access token (overrides GITHUB_TOKEN)")
	prCmd.Flags().BoolVar(&flagPRPost, "post", false, "Post the review summary to the pull request")
	prCmd.Flags().BoolVar(&flagPRApprove, "approve", false, "Post the review as an approval")
}
