package github

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	"github.com/revet-dev/revet/internal/diff"
)

// Client wraps the GitHub REST API for the operations revet needs.
type Client struct {
	gh *gh.Client
}

// NewClient creates an authenticated client. baseURL overrides the API
// endpoint for GitHub Enterprise; empty means api.github.com.
func NewClient(ctx context.Context, token, baseURL string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN is not set")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = 30 * time.Second
	client := gh.NewClient(httpClient)

	if baseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("configuring API URL: %w", err)
		}
	}

	return &Client{gh: client}, nil
}

// PullRequest is the PR metadata revet reports on.
type PullRequest struct {
	Number       int       `json:"number"`
	Title        string    `json:"title"`
	Body         string    `json:"body,omitempty"`
	Author       string    `json:"author"`
	State        string    `json:"state"`
	BaseBranch   string    `json:"baseBranch"`
	HeadBranch   string    `json:"headBranch"`
	Additions    int       `json:"additions"`
	Deletions    int       `json:"deletions"`
	ChangedFiles int       `json:"changedFiles"`
	URL          string    `json:"url"`
	IsDraft      bool      `json:"isDraft"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// GetPullRequest fetches PR metadata.
func (c *Client) GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error) {
	pr, _, err := c.gh.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("fetching PR #%d from %s/%s: %w", number, owner, repo, err)
	}
	return &PullRequest{
		Number:       pr.GetNumber(),
		Title:        pr.GetTitle(),
		Body:         pr.GetBody(),
		Author:       pr.GetUser().GetLogin(),
		State:        pr.GetState(),
		BaseBranch:   pr.GetBase().GetRef(),
		HeadBranch:   pr.GetHead().GetRef(),
		Additions:    pr.GetAdditions(),
		Deletions:    pr.GetDeletions(),
		ChangedFiles: pr.GetChangedFiles(),
		URL:          pr.GetHTMLURL(),
		IsDraft:      pr.GetDraft(),
		CreatedAt:    pr.GetCreatedAt().Time,
		UpdatedAt:    pr.GetUpdatedAt().Time,
	}, nil
}

// ListChangedFiles fetches the PR's changed files, following pagination.
func (c *Client) ListChangedFiles(ctx context.Context, owner, repo string, number int) ([]diff.ChangedFile, error) {
	opts := &gh.ListOptions{PerPage: 100}
	var files []diff.ChangedFile

	for {
		page, resp, err := c.gh.PullRequests.ListFiles(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("fetching PR files: %w", err)
		}
		for _, f := range page {
			files = append(files, diff.ChangedFile{
				Filename:         f.GetFilename(),
				Status:           mapStatus(f.GetStatus()),
				PreviousFilename: f.GetPreviousFilename(),
				Additions:        f.GetAdditions(),
				Deletions:        f.GetDeletions(),
				Patch:            f.GetPatch(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return files, nil
}

func mapStatus(s string) diff.FileStatus {
	switch s {
	case "added":
		return diff.StatusAdded
	case "removed":
		return diff.StatusDeleted
	case "renamed":
		return diff.StatusRenamed
	default:
		return diff.StatusModified
	}
}

// ReviewComment is an inline comment attached to a posted review.
type ReviewComment struct {
	Path string
	Line int
	Body string
}

// Review events accepted by PostReview.
const (
	EventApprove        = "APPROVE"
	EventRequestChanges = "REQUEST_CHANGES"
	EventComment        = "COMMENT"
)

// PostReview posts a review with the given body and event.
func (c *Client) PostReview(ctx context.Context, owner, repo string, number int, body, event string, comments []ReviewComment) error {
	req := &gh.PullRequestReviewRequest{
		Body:  gh.Ptr(body),
		Event: gh.Ptr(event),
	}
	for _, cm := range comments {
		req.Comments = append(req.Comments, &gh.DraftReviewComment{
			Path: gh.Ptr(cm.Path),
			Line: gh.Ptr(cm.Line),
			Body: gh.Ptr(cm.Body),
		})
	}

	if _, _, err := c.gh.PullRequests.CreateReview(ctx, owner, repo, number, req); err != nil {
		return fmt.Errorf("posting review to PR #%d: %w", number, err)
	}
	return nil
}

var (
	httpsRemoteRe = regexp.MustCompile(`https?://[^/]+/([^/]+)/([^/.\s]+)`)
	sshRemoteRe   = regexp.MustCompile(`[^@]+@[^:]+:([^/]+)/([^/.\s]+)`)
)

// DetectRepo parses owner/repo from the git remote origin URL.
func DetectRepo() (owner, repo string, err error) {
	out, err := exec.Command("git", "remote", "get-url", "origin").Output()
	if err != nil {
		return "", "", fmt.Errorf("cannot detect repo: git remote get-url origin failed: %w", err)
	}
	return ParseRemoteURL(strings.TrimSpace(string(out)))
}

// ParseRemoteURL extracts owner/repo from a git remote URL.
func ParseRemoteURL(url string) (owner, repo string, err error) {
	url = strings.TrimSuffix(url, ".git")

	if m := httpsRemoteRe.FindStringSubmatch(url); len(m) == 3 {
		return m[1], m[2], nil
	}
	if m := sshRemoteRe.FindStringSubmatch(url); len(m) == 3 {
		return m[1], m[2], nil
	}
	return "", "", fmt.Errorf("cannot parse owner/repo from remote URL: %s", url)
}
