package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/revet-dev/revet/internal/diff"
	"github.com/revet-dev/revet/internal/scan"
)

func TestNewAnthropic(t *testing.T) {
	if _, err := NewAnthropic("", ""); err == nil {
		t.Error("expected error for missing API key")
	}

	a, err := NewAnthropic("key", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.model != DefaultModel {
		t.Errorf("model = %q, want %q", a.model, DefaultModel)
	}

	a, err = NewAnthropic("key", "claude-haiku")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.model != "claude-haiku" {
		t.Errorf("model = %q, want claude-haiku", a.model)
	}
}

func TestAnthropic_EmptyPatchSkipsAPI(t *testing.T) {
	a, err := NewAnthropic("key", "")
	if err != nil {
		t.Fatal(err)
	}
	a.apiURL = "http://127.0.0.1:0" // unreachable; must not be contacted

	review, err := a.Analyze(context.Background(), diff.ChangedFile{Filename: "moved.go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.Rating != scan.RatingNeutral {
		t.Errorf("Rating = %q, want neutral", review.Rating)
	}
	if review.Summary != "no diff available" {
		t.Errorf("Summary = %q", review.Summary)
	}
}

func TestAnthropic_Analyze(t *testing.T) {
	var gotVersion, gotKey string
	var gotReq anthropicRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotVersion = r.Header.Get("anthropic-version")
		gotKey = r.Header.Get("x-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(anthropicResponse{
			Content: []anthropicBlock{
				{Type: "text", Text: "Rating: needs-attention\n\nIssues:\n- Hardcoded password in the diff\n"},
			},
		})
	}))
	defer srv.Close()

	a, err := NewAnthropic("test-key", "test-model")
	if err != nil {
		t.Fatal(err)
	}
	a.apiURL = srv.URL

	file := diff.ChangedFile{Filename: "auth.go", Patch: `@@ -1 +1 @@
+password = "hunter2"`}
	review, err := a.Analyze(context.Background(), file)
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	if gotKey != "test-key" {
		t.Errorf("x-api-key = %q", gotKey)
	}
	if gotVersion != anthropicAPIVersion {
		t.Errorf("anthropic-version = %q", gotVersion)
	}
	if gotReq.Model != "test-model" {
		t.Errorf("request model = %q", gotReq.Model)
	}
	if gotReq.System == "" {
		t.Error("request missing system prompt")
	}

	if review.Filename != "auth.go" {
		t.Errorf("Filename = %q", review.Filename)
	}
	if review.Rating != scan.RatingNeedsAttention {
		t.Errorf("Rating = %q, want needs-attention", review.Rating)
	}
	if len(review.Issues) != 1 {
		t.Fatalf("Issues = %d, want 1", len(review.Issues))
	}
	if review.Issues[0].Category != scan.CategorySecurity {
		t.Errorf("Category = %q, want security", review.Issues[0].Category)
	}
}

func TestAnthropic_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"type":"overloaded_error"}}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a, err := NewAnthropic("key", "")
	if err != nil {
		t.Fatal(err)
	}
	a.apiURL = srv.URL

	_, err = a.Analyze(context.Background(), diff.ChangedFile{Filename: "a.go", Patch: "@@ -1 +1 @@\n+x"})
	if err == nil {
		t.Fatal("expected error on non-200 status")
	}
}
