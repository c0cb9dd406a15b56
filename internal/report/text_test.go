package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/revet-dev/revet/internal/diff"
	"github.com/revet-dev/revet/internal/scan"
)

func TestTextRenderer(t *testing.T) {
	set := Aggregate(testEntries(), UnitPR, "acme/widgets#7", "0.1.0")

	var buf bytes.Buffer
	if err := (&TextRenderer{Color: false}).Write(&buf, set); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "revet code review — pr acme/widgets#7") {
		t.Errorf("missing banner line in:\n%s", out)
	}
	if !strings.Contains(out, "Files:       2") {
		t.Error("missing files stat")
	}
	if !strings.Contains(out, "Security:    1") {
		t.Error("missing security stat")
	}
	if !strings.Contains(out, "auth.go  [needs-attention]") {
		t.Error("missing per-file header with rating")
	}
	if !strings.Contains(out, "[HIGH] hardcoded credential detected (line 3)") {
		t.Error("missing issue line with severity tag")
	}
	if !strings.Contains(out, "- debug print statement detected (line 5)") {
		t.Error("missing suggestion line")
	}
}

func TestTextRenderer_NoColorNoANSI(t *testing.T) {
	set := Aggregate(testEntries(), UnitPR, "acme/widgets#7", "0.1.0")

	var buf bytes.Buffer
	if err := (&TextRenderer{Color: false}).Write(&buf, set); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("found ANSI escape sequences with Color disabled")
	}
}

func TestTextRenderer_StripsNarrativeMarkup(t *testing.T) {
	set := Aggregate(testEntries(), UnitPR, "", "0.1.0")
	// The pull-request narrative carries bold markers and a heading.
	if !strings.Contains(set.Summary, "**") {
		t.Fatalf("expected markup in narrative: %q", set.Summary)
	}

	var buf bytes.Buffer
	if err := (&TextRenderer{Color: false}).Write(&buf, set); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if strings.Contains(buf.String(), "**") {
		t.Error("narrative markup should be stripped in text output")
	}
	if !strings.Contains(buf.String(), "security issue(s) detected") {
		t.Error("stripped narrative lost its content")
	}
}

func TestTextRenderer_CleanSet(t *testing.T) {
	entries := []FileEntry{{
		File: diff.ChangedFile{Filename: "ok.go", Status: diff.StatusModified, Additions: 1},
		Review: scan.FileReview{
			Filename: "ok.go",
			Rating:   scan.RatingGood,
			Summary:  "No issues found. Looks good!",
		},
	}}
	set := Aggregate(entries, UnitLocal, "", "0.1.0")

	var buf bytes.Buffer
	if err := (&TextRenderer{Color: false}).Write(&buf, set); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(buf.String(), "No findings. Looks good!") {
		t.Error("missing clean-review closing line")
	}
}
