package diff

import "strings"

// FileStatus describes how a file changed in a review unit.
type FileStatus string

const (
	StatusAdded    FileStatus = "added"
	StatusModified FileStatus = "modified"
	StatusDeleted  FileStatus = "deleted"
	StatusRenamed  FileStatus = "renamed"
)

// ChangedFile is one changed file in a review unit. Patch is the unified-diff
// fragment for the file (hunk headers onward) and may be empty for binary or
// metadata-only changes.
type ChangedFile struct {
	Filename         string     `json:"filename"`
	Status           FileStatus `json:"status"`
	PreviousFilename string     `json:"previousFilename,omitempty"`
	Additions        int        `json:"additions"`
	Deletions        int        `json:"deletions"`
	Patch            string     `json:"patch,omitempty"`
}

// ParseUnified splits raw `git diff` output into per-file ChangedFile records.
// Status is derived from the `new file`/`deleted file`/`rename from` markers
// in each section header; addition/deletion counts come from the +/- lines.
// Malformed input yields zero records, never an error.
func ParseUnified(raw string) []ChangedFile {
	var files []ChangedFile
	for _, section := range splitSections(raw) {
		if cf, ok := parseSection(section); ok {
			files = append(files, cf)
		}
	}
	return files
}

func splitSections(raw string) []string {
	var sections []string
	var current strings.Builder
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, "diff --git") && current.Len() > 0 {
			sections = append(sections, current.String())
			current.Reset()
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	if s := current.String(); strings.TrimSpace(s) != "" {
		sections = append(sections, s)
	}
	return sections
}

func parseSection(section string) (ChangedFile, bool) {
	lines := strings.Split(section, "\n")
	cf := ChangedFile{Status: StatusModified}
	patchStart := -1

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "new file mode"):
			cf.Status = StatusAdded
		case strings.HasPrefix(line, "deleted file mode"):
			cf.Status = StatusDeleted
		case strings.HasPrefix(line, "rename from "):
			cf.Status = StatusRenamed
			cf.PreviousFilename = strings.TrimPrefix(line, "rename from ")
		case strings.HasPrefix(line, "rename to "):
			cf.Filename = strings.TrimPrefix(line, "rename to ")
		case strings.HasPrefix(line, "+++ b/"):
			cf.Filename = strings.TrimPrefix(line, "+++ b/")
		case strings.HasPrefix(line, "--- a/") && cf.Status == StatusDeleted && cf.Filename == "":
			cf.Filename = strings.TrimPrefix(line, "--- a/")
		case strings.HasPrefix(line, "@@"):
			if patchStart == -1 {
				patchStart = i
			}
		}
	}

	if cf.Filename == "" {
		return ChangedFile{}, false
	}

	if patchStart >= 0 {
		cf.Patch = strings.TrimSuffix(strings.Join(lines[patchStart:], "\n"), "\n")
		for _, line := range lines[patchStart:] {
			if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
				cf.Additions++
			}
			if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
				cf.Deletions++
			}
		}
	}

	return cf, true
}
