package routing

import (
	"github.com/kickai/agentmatch/capability"
)

// Method says which stage of resolution produced a decision.
type Method string

const (
	// MethodCommand is a slash-command table hit.
	MethodCommand Method = "command"
	// MethodKeyword is a rule keyword hit on free text.
	MethodKeyword Method = "keyword"
	// MethodCapability is capability inference from catalog keywords.
	MethodCapability Method = "capability"
	// MethodFallback is the last-resort fallback role.
	MethodFallback Method = "fallback"
)

// Rule routes one command (and optionally related free text) to a role.
// Either Role or Capability must be set; when Role is empty the role is
// resolved at routing time via the capability manager, so the rule keeps
// working when the matrix changes.
type Rule struct {
	// Command is the slash command, including the leading slash.
	Command string `yaml:"command" json:"command"`

	// Aliases are alternative command spellings.
	Aliases []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`

	// Keywords match the rule against free text.
	Keywords []string `yaml:"keywords,omitempty" json:"keywords,omitempty"`

	// Role is the target agent role.
	Role capability.AgentRole `yaml:"role,omitempty" json:"role,omitempty"`

	// Capability is the capability the request exercises. Used to resolve
	// the role when Role is empty and to pick stand-ins when the target role
	// is offline.
	Capability capability.Type `yaml:"capability,omitempty" json:"capability,omitempty"`

	// Priority orders keyword matching; higher wins.
	Priority int `yaml:"priority" json:"priority"`

	// Description is used by help output.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Decision is the outcome of routing one message.
type Decision struct {
	// Role is the agent role selected to handle the message.
	Role capability.AgentRole `json:"role"`

	// Capability is the capability the decision was based on, if any.
	Capability capability.Type `json:"capability,omitempty"`

	// Method says which resolution stage decided.
	Method Method `json:"method"`

	// Rule is the matched rule, nil for capability inference and fallback.
	Rule *Rule `json:"rule,omitempty"`

	// Standin is true when the preferred role was offline and another
	// capable role was chosen instead.
	Standin bool `json:"standin,omitempty"`
}
