// Package github is the pull-request diff source.
//
// It fetches PR metadata and changed files through the GitHub REST API and
// posts review feedback back to the PR. The repository can be given
// explicitly as owner/repo or detected from the local git remote. In GitHub
// Actions, the PR number is read from the workflow event payload.
package github
