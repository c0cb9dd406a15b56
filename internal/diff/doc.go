// Package diff models changed files and collects them from local git
// workspaces.
//
// ChangedFile is the common currency of the analysis pipeline: the GitHub
// pull-request source in internal/github produces the same records, so
// everything downstream is source-agnostic. ParseUnified turns raw unified
// diff output into ChangedFile values; LocalChanges shells out to git for
// working-tree, staged, and branch-range comparisons.
package diff
