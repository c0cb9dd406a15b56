package github

import (
	"encoding/json"
	"fmt"
	"os"
)

// Event is the slice of a GitHub Actions event payload revet cares about.
type Event struct {
	Number      int `json:"number"`
	PullRequest *struct {
		Number int `json:"number"`
	} `json:"pull_request"`
}

// ReadEventPRNumber extracts the pull request number from a CI event payload
// file (GITHUB_EVENT_PATH).
func ReadEventPRNumber(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading event payload: %w", err)
	}

	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return 0, fmt.Errorf("parsing event payload: %w", err)
	}

	if ev.PullRequest != nil && ev.PullRequest.Number > 0 {
		return ev.PullRequest.Number, nil
	}
	if ev.Number > 0 {
		return ev.Number, nil
	}
	return 0, fmt.Errorf("event payload has no pull request number")
}
