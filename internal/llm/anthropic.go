package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/revet-dev/revet/internal/diff"
	"github.com/revet-dev/revet/internal/scan"
)

const (
	anthropicAPIURL     = "https://api.anthropic.com/v1/messages"
	anthropicAPIVersion = "2023-06-01"

	// DefaultModel is used when no model override is configured.
	DefaultModel = "claude-sonnet-4-20250514"
)

// Anthropic analyzes changed files through Anthropic's messages API. Each
// call is a single blocking request; there is no retry.
type Anthropic struct {
	apiKey string
	model  string
	apiURL string
	client *http.Client
}

// NewAnthropic creates an LLM analyzer. An empty model selects DefaultModel.
func NewAnthropic(apiKey, model string) (*Anthropic, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is not set")
	}
	if model == "" {
		model = DefaultModel
	}
	return &Anthropic{
		apiKey: apiKey,
		model:  model,
		apiURL: anthropicAPIURL,
		client: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (a *Anthropic) Name() string { return "llm" }

// Analyze sends one file's patch to the model and heuristically parses the
// free-form response into a FileReview.
func (a *Anthropic) Analyze(ctx context.Context, file diff.ChangedFile) (scan.FileReview, error) {
	if file.Patch == "" {
		return scan.FileReview{
			Filename: file.Filename,
			Rating:   scan.RatingNeutral,
			Summary:  "no diff available",
		}, nil
	}

	system, user := buildPrompts(file)
	content, err := a.complete(ctx, system, user)
	if err != nil {
		return scan.FileReview{}, err
	}

	review := ParseReview(content)
	review.Filename = file.Filename
	return review, nil
}

func (a *Anthropic) complete(ctx context.Context, system, user string) (string, error) {
	body := anthropicRequest{
		Model:     a.model,
		MaxTokens: 4096,
		System:    system,
		Messages: []anthropicMessage{
			{Role: "user", Content: user},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", a.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", a.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicAPIVersion)

	httpResp, err := a.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != 200 {
		return "", fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, string(respBody))
	}

	var result anthropicResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}

	var content string
	for _, block := range result.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}
	return content, nil
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []anthropicBlock `json:"content"`
}

type anthropicBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
