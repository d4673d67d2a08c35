package routing

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RulesFile is the on-disk shape of a routing rule table.
type RulesFile struct {
	// Rules replaces the built-in table when present.
	Rules []Rule `yaml:"rules,omitempty" json:"rules,omitempty"`

	// Config overrides router defaults when present.
	Config *Config `yaml:"config,omitempty" json:"config,omitempty"`
}

// LoadRulesFile reads a rules file and parses it. Format is detected from
// the file extension (.yaml, .yml, .json).
func LoadRulesFile(path string) (*RulesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var rf RulesFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &rf); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &rf); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(path))
	}

	return &rf, nil
}

// RuleSet returns the file's rules, or the built-in table when the file
// omits them.
func (rf *RulesFile) RuleSet() []Rule {
	if len(rf.Rules) == 0 {
		return DefaultRules()
	}
	return rf.Rules
}

// RouterConfig returns the file's config merged over the defaults.
func (rf *RulesFile) RouterConfig() Config {
	cfg := DefaultConfig()
	if rf.Config == nil {
		return cfg
	}
	if rf.Config.FallbackRole != "" {
		cfg.FallbackRole = rf.Config.FallbackRole
	}
	if rf.Config.MinProficiency > 0 {
		cfg.MinProficiency = rf.Config.MinProficiency
	}
	cfg.RequirePresence = rf.Config.RequirePresence
	return cfg
}
