package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config is the resolved runtime configuration.
type Config struct {
	// GitHubToken authenticates the hosted-repo API. Required for pr/action.
	GitHubToken string
	// GitHubAPIURL overrides the API base URL (GitHub Enterprise).
	GitHubAPIURL string
	// AnthropicKey, when present, switches scanning from pattern-based to
	// LLM-assisted with per-file fallback.
	AnthropicKey string
	// Model overrides the default LLM model name.
	Model string
	// Format is the default output format.
	Format string
	// FailOn is the severity threshold that turns findings into exit code 1.
	FailOn string
	// CI is true when a CI environment signal is present; it suppresses
	// decorative output.
	CI bool
}

// UseLLM reports whether the LLM-assisted analysis path is enabled.
func (c Config) UseLLM() bool { return c.AnthropicKey != "" }

// Load reads .env from the current directory if present, then resolves the
// configuration from the environment.
func Load() Config {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg := Config{
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		GitHubAPIURL: os.Getenv("GITHUB_API_URL"),
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		Model:        os.Getenv("REVET_MODEL"),
		Format:       os.Getenv("REVET_FORMAT"),
		FailOn:       os.Getenv("REVET_FAIL_ON"),
		CI:           os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "",
	}
	if cfg.Format == "" {
		cfg.Format = "markdown"
	}
	if cfg.FailOn == "" {
		cfg.FailOn = "none"
	}
	return cfg
}

const exampleEnv = `# revet configuration
# Token for the GitHub API (required for 'revet pr' and 'revet action')
GITHUB_TOKEN=

# Override the GitHub API base URL (GitHub Enterprise)
#GITHUB_API_URL=

# When set, file analysis is LLM-assisted instead of pattern-based
#ANTHROPIC_API_KEY=

# Override the LLM model
#REVET_MODEL=

# Default output format: markdown, text, json
#REVET_FORMAT=markdown

# Severity threshold for exit code 1: none, low, medium, high, critical
#REVET_FAIL_ON=none
`

// WriteExampleEnv writes an example environment file for `revet setup`.
func WriteExampleEnv(path string) error {
	if err := os.WriteFile(path, []byte(exampleEnv), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
