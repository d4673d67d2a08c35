package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "memory", cfg.Presence.Backend)
	assert.Equal(t, 30*time.Second, cfg.Presence.HeartbeatTTL)
	assert.Equal(t, 0.5, cfg.Routing.MinProficiency)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "agentmatch", cfg.Metrics.Namespace)
}

func TestLoadFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  addr: ":9999"
  rate_limit_rps: 25
log:
  level: debug
  format: console
presence:
  backend: redis
  heartbeat_ttl: 10s
  redis:
    addr: "redis:6379"
    db: 2
routing:
  fallback_role: team_manager
  require_presence: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := NewLoader().WithConfigPath(path).Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, float64(25), cfg.Server.RateLimitRPS)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "redis", cfg.Presence.Backend)
	assert.Equal(t, 10*time.Second, cfg.Presence.HeartbeatTTL)
	assert.Equal(t, "redis:6379", cfg.Presence.Redis.Addr)
	assert.Equal(t, 2, cfg.Presence.Redis.DB)
	assert.Equal(t, "team_manager", cfg.Routing.FallbackRole)
	assert.True(t, cfg.Routing.RequirePresence)

	// Untouched sections keep their defaults.
	assert.Equal(t, ":9090", cfg.Server.MetricsAddr)
	assert.Equal(t, "agentmatch:presence:", cfg.Presence.Redis.KeyPrefix)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().WithConfigPath("/nonexistent/config.yaml").Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("AGENTMATCH_SERVER_ADDR", ":7070")
	t.Setenv("AGENTMATCH_LOG_LEVEL", "warn")
	t.Setenv("AGENTMATCH_PRESENCE_HEARTBEAT_TTL", "45s")
	t.Setenv("AGENTMATCH_PRESENCE_REDIS_DB", "5")
	t.Setenv("AGENTMATCH_ROUTING_MIN_PROFICIENCY", "0.7")
	t.Setenv("AGENTMATCH_LOG_OUTPUT_PATHS", "stdout, /var/log/agentmatch.log")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 45*time.Second, cfg.Presence.HeartbeatTTL)
	assert.Equal(t, 5, cfg.Presence.Redis.DB)
	assert.Equal(t, 0.7, cfg.Routing.MinProficiency)
	assert.Equal(t, []string{"stdout", "/var/log/agentmatch.log"}, cfg.Log.OutputPaths)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9999\"\n"), 0o644))
	t.Setenv("AGENTMATCH_SERVER_ADDR", ":6060")

	cfg, err := NewLoader().WithConfigPath(path).Load()
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Server.Addr)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"bad backend", func(c *Config) { c.Presence.Backend = "etcd" }},
		{"redis without addr", func(c *Config) {
			c.Presence.Backend = "redis"
			c.Presence.Redis.Addr = ""
		}},
		{"zero heartbeat ttl", func(c *Config) { c.Presence.HeartbeatTTL = 0 }},
		{"proficiency out of range", func(c *Config) { c.Routing.MinProficiency = 1.5 }},
		{"telemetry without endpoint", func(c *Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.OTLPEndpoint = ""
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestCustomValidator(t *testing.T) {
	_, err := NewLoader().
		WithValidator(func(c *Config) error {
			return assert.AnError
		}).
		Load()
	require.Error(t, err)
}

func TestInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := NewLoader().WithConfigPath(path).Load()
	require.Error(t, err)
}

func TestMustLoadPanicsOnInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644))

	assert.Panics(t, func() { MustLoad(path) })
}
