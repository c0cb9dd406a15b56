package scan

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Overrides is a rules pack loaded from --rules. It adjusts the built-in
// registry without touching scan control flow: severities can be remapped
// per rule ID and individual rules can be disabled.
type Overrides struct {
	Severities map[string]string `json:"severities,omitempty" yaml:"severities,omitempty"`
	Disable    []string          `json:"disable,omitempty" yaml:"disable,omitempty"`
}

// LoadOverrides loads a rules file from disk. YAML is assumed for .yaml/.yml
// paths, JSON otherwise. Returns nil Overrides and nil error if path is empty.
func LoadOverrides(path string) (*Overrides, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var ov Overrides
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(data, &ov); err != nil {
			return nil, fmt.Errorf("parsing rules file: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &ov); err != nil {
			return nil, fmt.Errorf("parsing rules file: %w", err)
		}
	}
	return &ov, nil
}

// WithOverrides returns a new registry with the overrides applied. A nil
// override returns the receiver unchanged.
func (g *Registry) WithOverrides(ov *Overrides) *Registry {
	if ov == nil {
		return g
	}

	disabled := make(map[string]bool, len(ov.Disable))
	for _, id := range ov.Disable {
		disabled[id] = true
	}

	rules := make([]Rule, 0, len(g.rules))
	for _, r := range g.rules {
		if disabled[r.ID] {
			continue
		}
		if sev, ok := ov.Severities[r.ID]; ok {
			r.Severity = Severity(sev)
		}
		rules = append(rules, r)
	}
	return &Registry{rules: rules}
}
