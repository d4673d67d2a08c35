package routing

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kickai/agentmatch/capability"
	"github.com/kickai/agentmatch/presence"
)

func newTestRouter(t *testing.T, store presence.Store, cfg Config) *Router {
	t.Helper()

	m, err := capability.NewDefaultManager(zap.NewNop())
	require.NoError(t, err)

	r, err := NewRouter(DefaultRules(), m, store, cfg, zap.NewNop())
	require.NoError(t, err)
	return r
}

func TestRouter_CommandMatch(t *testing.T) {
	r := newTestRouter(t, nil, DefaultConfig())
	ctx := context.Background()

	d, err := r.Route(ctx, "/register John Smith 07700900123")
	require.NoError(t, err)
	assert.Equal(t, capability.RolePlayerCoordinator, d.Role)
	assert.Equal(t, MethodCommand, d.Method)
	require.NotNil(t, d.Rule)
	assert.Equal(t, "/register", d.Rule.Command)
	assert.False(t, d.Standin)
}

func TestRouter_CommandAlias(t *testing.T) {
	r := newTestRouter(t, nil, DefaultConfig())

	d, err := r.Route(context.Background(), "/signup")
	require.NoError(t, err)
	assert.Equal(t, capability.RolePlayerCoordinator, d.Role)
}

func TestRouter_CommandWithBotSuffix(t *testing.T) {
	r := newTestRouter(t, nil, DefaultConfig())

	d, err := r.Route(context.Background(), "/availability@kickai_bot yes")
	require.NoError(t, err)
	assert.Equal(t, capability.RoleMatchCoordinator, d.Role)
	assert.Equal(t, MethodCommand, d.Method)
}

func TestRouter_CommandCaseInsensitive(t *testing.T) {
	r := newTestRouter(t, nil, DefaultConfig())

	d, err := r.Route(context.Background(), "/PAY 5")
	require.NoError(t, err)
	assert.Equal(t, capability.RoleFinanceManager, d.Role)
}

func TestRouter_CapabilityResolvedCommand(t *testing.T) {
	r := newTestRouter(t, nil, DefaultConfig())

	// /onboard names no role; the matrix resolves it, and the player
	// coordinator wins the 0.95 tie by seed order.
	d, err := r.Route(context.Background(), "/onboard")
	require.NoError(t, err)
	assert.Equal(t, capability.RolePlayerCoordinator, d.Role)
	assert.Equal(t, capability.PlayerOnboarding, d.Capability)
}

func TestRouter_KeywordMatch(t *testing.T) {
	r := newTestRouter(t, nil, DefaultConfig())

	d, err := r.Route(context.Background(), "hi, am I available for Saturday?")
	require.NoError(t, err)
	assert.Equal(t, capability.RoleMatchCoordinator, d.Role)
	assert.Equal(t, MethodKeyword, d.Method)
}

func TestRouter_KeywordPriorityOrder(t *testing.T) {
	m, err := capability.NewDefaultManager(zap.NewNop())
	require.NoError(t, err)

	rules := []Rule{
		{Command: "/low", Keywords: []string{"clash"}, Role: capability.RoleTeamManager, Priority: 1},
		{Command: "/high", Keywords: []string{"clash"}, Role: capability.RoleFinanceManager, Priority: 9},
	}
	r, err := NewRouter(rules, m, nil, DefaultConfig(), zap.NewNop())
	require.NoError(t, err)

	d, err := r.Route(context.Background(), "total clash here")
	require.NoError(t, err)
	assert.Equal(t, capability.RoleFinanceManager, d.Role, "higher priority rule must win")
}

func TestRouter_CapabilityInference(t *testing.T) {
	r := newTestRouter(t, nil, DefaultConfig())

	// No rule keyword mentions injuries; the catalog does.
	d, err := r.Route(context.Background(), "I picked up an injury at training")
	require.NoError(t, err)
	assert.Equal(t, MethodCapability, d.Method)
	assert.Equal(t, capability.InjuryTracking, d.Capability)
	assert.Equal(t, capability.RolePlayerCoordinator, d.Role)
}

func TestRouter_Fallback(t *testing.T) {
	r := newTestRouter(t, nil, DefaultConfig())

	d, err := r.Route(context.Background(), "qwerty zxcvb")
	require.NoError(t, err)
	assert.Equal(t, capability.RoleCommandFallback, d.Role)
	assert.Equal(t, MethodFallback, d.Method)
}

func TestRouter_UnknownCommandFallsThrough(t *testing.T) {
	r := newTestRouter(t, nil, DefaultConfig())

	d, err := r.Route(context.Background(), "/dance")
	require.NoError(t, err)
	assert.Equal(t, capability.RoleCommandFallback, d.Role)
}

func TestRouter_PresenceStandin(t *testing.T) {
	store := presence.NewMemoryStore(nil)
	defer store.Close()
	ctx := context.Background()

	cfg := DefaultConfig()
	cfg.RequirePresence = true
	r := newTestRouter(t, store, cfg)

	// Only the onboarding agent is up; /register prefers the player
	// coordinator but must settle for the capable stand-in.
	require.NoError(t, store.Heartbeat(ctx, capability.RoleOnboardingAgent, time.Minute))

	d, err := r.Route(ctx, "/register")
	require.NoError(t, err)
	assert.Equal(t, capability.RoleOnboardingAgent, d.Role)
	assert.True(t, d.Standin)

	// Once the coordinator heartbeats, it takes over again.
	require.NoError(t, store.Heartbeat(ctx, capability.RolePlayerCoordinator, time.Minute))

	d, err = r.Route(ctx, "/register")
	require.NoError(t, err)
	assert.Equal(t, capability.RolePlayerCoordinator, d.Role)
	assert.False(t, d.Standin)
}

func TestRouter_PresenceAllDownFallsBack(t *testing.T) {
	store := presence.NewMemoryStore(nil)
	defer store.Close()

	cfg := DefaultConfig()
	cfg.RequirePresence = true
	r := newTestRouter(t, store, cfg)

	d, err := r.Route(context.Background(), "/stats")
	require.NoError(t, err)
	assert.Equal(t, capability.RoleCommandFallback, d.Role)
	assert.True(t, d.Standin)
}

func TestNewRouter_RejectsDuplicateCommand(t *testing.T) {
	m, err := capability.NewDefaultManager(zap.NewNop())
	require.NoError(t, err)

	rules := []Rule{
		{Command: "/x", Role: capability.RoleTeamManager},
		{Command: "/y", Aliases: []string{"/x"}, Role: capability.RoleTeamManager},
	}
	_, err = NewRouter(rules, m, nil, DefaultConfig(), zap.NewNop())
	assert.Error(t, err)
}

func TestNewRouter_RejectsRuleWithoutTarget(t *testing.T) {
	m, err := capability.NewDefaultManager(zap.NewNop())
	require.NoError(t, err)

	_, err = NewRouter([]Rule{{Command: "/x"}}, m, nil, DefaultConfig(), zap.NewNop())
	assert.Error(t, err)
}

func TestNewRouter_RejectsUndefinedCapability(t *testing.T) {
	m, err := capability.NewDefaultManager(zap.NewNop())
	require.NoError(t, err)

	rules := []Rule{{Command: "/x", Capability: "nope", Role: capability.RoleTeamManager}}
	_, err = NewRouter(rules, m, nil, DefaultConfig(), zap.NewNop())
	assert.Error(t, err)
}

func TestNewRouter_RejectsCommandWithoutSlash(t *testing.T) {
	m, err := capability.NewDefaultManager(zap.NewNop())
	require.NoError(t, err)

	_, err = NewRouter([]Rule{{Command: "x", Role: capability.RoleTeamManager}}, m, nil, DefaultConfig(), zap.NewNop())
	assert.Error(t, err)
}

func TestLoadRulesFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")

	data := `
config:
  fallback_role: team_manager
  min_proficiency: 0.7
rules:
  - command: /train
    keywords: [training]
    role: match_coordinator
    capability: match_day_coordination
    priority: 50
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	rf, err := LoadRulesFile(path)
	require.NoError(t, err)

	require.Len(t, rf.Rules, 1)
	assert.Equal(t, "/train", rf.Rules[0].Command)

	cfg := rf.RouterConfig()
	assert.Equal(t, capability.AgentRole("team_manager"), cfg.FallbackRole)
	assert.InDelta(t, 0.7, cfg.MinProficiency, 1e-9)

	m, err := capability.NewDefaultManager(zap.NewNop())
	require.NoError(t, err)

	r, err := NewRouter(rf.RuleSet(), m, nil, cfg, zap.NewNop())
	require.NoError(t, err)

	d, err := r.Route(context.Background(), "/train tonight")
	require.NoError(t, err)
	assert.Equal(t, capability.RoleMatchCoordinator, d.Role)
}

func TestRulesFile_DefaultsWhenEmpty(t *testing.T) {
	rf := &RulesFile{}
	assert.Len(t, rf.RuleSet(), len(DefaultRules()))
	assert.Equal(t, DefaultConfig(), rf.RouterConfig())
}
