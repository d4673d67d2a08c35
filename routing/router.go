package routing

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/kickai/agentmatch/capability"
	"github.com/kickai/agentmatch/presence"
)

// Config holds router tuning knobs.
type Config struct {
	// FallbackRole answers anything no rule or capability claims.
	FallbackRole capability.AgentRole `yaml:"fallback_role" json:"fallback_role"`

	// MinProficiency is the threshold for stand-in selection when the
	// preferred role is offline.
	MinProficiency float64 `yaml:"min_proficiency" json:"min_proficiency"`

	// RequirePresence skips roles without a live heartbeat. Ignored when no
	// presence store is configured.
	RequirePresence bool `yaml:"require_presence" json:"require_presence"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		FallbackRole:    capability.RoleCommandFallback,
		MinProficiency:  0.5,
		RequirePresence: false,
	}
}

// Router resolves inbound messages to agent roles. Construction sorts and
// indexes the rule table; a Router is immutable afterwards and safe for
// concurrent use.
type Router struct {
	rules     []Rule // priority order, stable within equal priority
	byCommand map[string]*Rule
	manager   *capability.Manager
	store     presence.Store // nil when presence is not consulted
	config    Config
	logger    *zap.Logger
}

// NewRouter builds a Router over the given rules. Rules must name a role or
// a capability, and no two rules may claim the same command or alias.
func NewRouter(rules []Rule, manager *capability.Manager, store presence.Store, config Config, logger *zap.Logger) (*Router, error) {
	if manager == nil {
		return nil, fmt.Errorf("capability manager is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.FallbackRole == "" {
		config.FallbackRole = capability.RoleCommandFallback
	}
	if config.MinProficiency <= 0 {
		config.MinProficiency = DefaultConfig().MinProficiency
	}

	r := &Router{
		rules:     make([]Rule, len(rules)),
		byCommand: make(map[string]*Rule),
		manager:   manager,
		store:     store,
		config:    config,
		logger:    logger.With(zap.String("component", "router")),
	}
	copy(r.rules, rules)

	// Stable sort keeps declaration order within equal priority.
	sort.SliceStable(r.rules, func(i, j int) bool {
		return r.rules[i].Priority > r.rules[j].Priority
	})

	for i := range r.rules {
		rule := &r.rules[i]
		if rule.Role == "" && rule.Capability == "" {
			return nil, fmt.Errorf("rule %q names neither a role nor a capability", rule.Command)
		}
		if rule.Capability != "" {
			if _, ok := manager.Definition(rule.Capability); !ok {
				return nil, fmt.Errorf("rule %q references undefined capability %s", rule.Command, rule.Capability)
			}
		}
		for _, cmd := range append([]string{rule.Command}, rule.Aliases...) {
			if cmd == "" {
				continue
			}
			cmd = strings.ToLower(cmd)
			if !strings.HasPrefix(cmd, "/") {
				return nil, fmt.Errorf("command %q must start with a slash", cmd)
			}
			if _, dup := r.byCommand[cmd]; dup {
				return nil, fmt.Errorf("command %s registered twice", cmd)
			}
			r.byCommand[cmd] = rule
		}
	}

	r.logger.Debug("router built",
		zap.Int("rules", len(r.rules)),
		zap.Int("commands", len(r.byCommand)),
	)

	return r, nil
}

// Route resolves a message to an agent role. It never fails to decide:
// unroutable text lands on the fallback role.
func (r *Router) Route(ctx context.Context, text string) (*Decision, error) {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "/") {
		if d, err := r.routeCommand(ctx, text); err != nil {
			return nil, err
		} else if d != nil {
			return d, nil
		}
	}

	if d, err := r.routeKeywords(ctx, text); err != nil {
		return nil, err
	} else if d != nil {
		return d, nil
	}

	if d, err := r.routeByCapability(ctx, text); err != nil {
		return nil, err
	} else if d != nil {
		return d, nil
	}

	r.logger.Debug("falling back", zap.String("text", text))
	return &Decision{Role: r.config.FallbackRole, Method: MethodFallback}, nil
}

// routeCommand matches the leading /command token. A known command always
// resolves (possibly to a stand-in); an unknown command returns nil so
// keyword matching gets a chance.
func (r *Router) routeCommand(ctx context.Context, text string) (*Decision, error) {
	cmd := strings.ToLower(strings.Fields(text)[0])
	// Telegram group chats append the bot name: /register@kickai_bot.
	if at := strings.Index(cmd, "@"); at > 0 {
		cmd = cmd[:at]
	}

	rule, ok := r.byCommand[cmd]
	if !ok {
		return nil, nil
	}

	role, standin, err := r.resolveRole(ctx, rule)
	if err != nil {
		return nil, err
	}

	return &Decision{
		Role:       role,
		Capability: rule.Capability,
		Method:     MethodCommand,
		Rule:       rule,
		Standin:    standin,
	}, nil
}

// routeKeywords scores free text against rule keywords, highest priority
// first.
func (r *Router) routeKeywords(ctx context.Context, text string) (*Decision, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil, nil
	}
	joined := " " + strings.Join(tokens, " ") + " "

	for i := range r.rules {
		rule := &r.rules[i]
		if !ruleMatches(rule, joined) {
			continue
		}

		role, standin, err := r.resolveRole(ctx, rule)
		if err != nil {
			return nil, err
		}
		return &Decision{
			Role:       role,
			Capability: rule.Capability,
			Method:     MethodKeyword,
			Rule:       rule,
			Standin:    standin,
		}, nil
	}
	return nil, nil
}

// ruleMatches reports whether any rule keyword occurs in the normalized
// token string. Multi-word keywords match as phrases.
func ruleMatches(rule *Rule, joined string) bool {
	for _, kw := range rule.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(joined, " "+kw+" ") {
			return true
		}
	}
	return false
}

// routeByCapability infers the most likely capability from catalog keywords
// and resolves it to a role.
func (r *Router) routeByCapability(ctx context.Context, text string) (*Decision, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil, nil
	}
	joined := " " + strings.Join(tokens, " ") + " "

	var bestCap capability.Type
	bestHits := 0
	for _, def := range r.manager.Definitions() {
		hits := 0
		for _, kw := range def.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" && strings.Contains(joined, " "+kw+" ") {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			bestCap = def.Capability
		}
	}
	if bestHits == 0 {
		return nil, nil
	}

	role, standin, err := r.resolveForCapability(ctx, bestCap)
	if err != nil {
		return nil, err
	}
	if role == "" {
		return nil, nil
	}

	return &Decision{
		Role:       role,
		Capability: bestCap,
		Method:     MethodCapability,
		Standin:    standin,
	}, nil
}

// resolveRole turns a rule into a live role. Preference order: the rule's
// own role, then capable stand-ins, then the fallback role.
func (r *Router) resolveRole(ctx context.Context, rule *Rule) (capability.AgentRole, bool, error) {
	if rule.Role != "" {
		online, err := r.isOnline(ctx, rule.Role)
		if err != nil {
			return "", false, err
		}
		if online {
			return rule.Role, false, nil
		}
		// Preferred role is down; look for a capable stand-in.
		if rule.Capability != "" {
			standin, err := r.pickOnline(ctx, r.manager.AgentsWithCapability(rule.Capability, r.config.MinProficiency), rule.Role)
			if err != nil {
				return "", false, err
			}
			if standin != "" {
				return standin, true, nil
			}
		}
		return r.config.FallbackRole, true, nil
	}

	role, standin, err := r.resolveForCapability(ctx, rule.Capability)
	if err != nil {
		return "", false, err
	}
	if role == "" {
		return r.config.FallbackRole, true, nil
	}
	return role, standin, nil
}

// resolveForCapability picks the best live holder of a capability.
func (r *Router) resolveForCapability(ctx context.Context, ct capability.Type) (capability.AgentRole, bool, error) {
	best, ok := r.manager.BestAgentFor(ct)
	if !ok {
		return "", false, nil
	}

	online, err := r.isOnline(ctx, best)
	if err != nil {
		return "", false, err
	}
	if online {
		return best, false, nil
	}

	standin, err := r.pickOnline(ctx, r.manager.AgentsWithCapability(ct, r.config.MinProficiency), best)
	if err != nil {
		return "", false, err
	}
	if standin != "" {
		return standin, true, nil
	}
	return "", false, nil
}

// isOnline consults the presence store when one is configured and required.
// The fallback role is always treated as online.
func (r *Router) isOnline(ctx context.Context, role capability.AgentRole) (bool, error) {
	if r.store == nil || !r.config.RequirePresence || role == r.config.FallbackRole {
		return true, nil
	}
	status, err := r.store.Get(ctx, role)
	if err != nil {
		return false, fmt.Errorf("presence lookup for %s: %w", role, err)
	}
	return status != nil, nil
}

// pickOnline returns the first live role in candidates, skipping skip.
func (r *Router) pickOnline(ctx context.Context, candidates []capability.AgentRole, skip capability.AgentRole) (capability.AgentRole, error) {
	for _, role := range candidates {
		if role == skip {
			continue
		}
		online, err := r.isOnline(ctx, role)
		if err != nil {
			return "", err
		}
		if online {
			return role, nil
		}
	}
	return "", nil
}

// Rules returns the rule table in routing order.
func (r *Router) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// tokenize lowercases text and splits it into word tokens, dropping
// punctuation and one-letter noise.
func tokenize(text string) []string {
	text = strings.ToLower(text)
	words := strings.FieldsFunc(text, func(c rune) bool {
		return !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_')
	})

	filtered := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) > 1 {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
