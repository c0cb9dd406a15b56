package diff

import (
	"fmt"
	"os/exec"
	"strings"
)

// LocalOptions controls how a local git diff is gathered.
type LocalOptions struct {
	Dir    string // working directory, defaults to the current one
	Staged bool   // index vs HEAD instead of working tree vs HEAD
	Base   string // base branch/rev for a range comparison
	Head   string // compare branch/rev, defaults to HEAD when Base is set
}

// LocalChanges runs git in the given workspace and returns the changed files.
func LocalChanges(opts LocalOptions) ([]ChangedFile, error) {
	args := []string{"diff"}
	switch {
	case opts.Base != "":
		head := opts.Head
		if head == "" {
			head = "HEAD"
		}
		args = append(args, fmt.Sprintf("%s...%s", opts.Base, head))
	case opts.Staged:
		args = append(args, "--cached")
	}

	raw, err := gitOutput(opts.Dir, args...)
	if err != nil {
		return nil, fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return ParseUnified(raw), nil
}

// RepoRoot returns the top-level directory of the repository at dir.
func RepoRoot(dir string) (string, error) {
	out, err := gitOutput(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Branch returns the current branch name at dir, or "" for detached HEAD.
func Branch(dir string) string {
	out, err := gitOutput(dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

func gitOutput(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
