package presence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kickai/agentmatch/capability"
)

// RedisConfig holds connection settings for the Redis-backed store.
type RedisConfig struct {
	// Addr is the Redis host:port.
	Addr string `yaml:"addr" json:"addr"`

	// Password is the Redis password, empty for none.
	Password string `yaml:"password" json:"password"`

	// DB is the Redis database number.
	DB int `yaml:"db" json:"db"`

	// KeyPrefix namespaces presence keys, e.g. per deployment.
	KeyPrefix string `yaml:"key_prefix" json:"key_prefix"`

	// MaxRetries is the per-command retry budget.
	MaxRetries int `yaml:"max_retries" json:"max_retries"`

	// PoolSize is the connection pool size.
	PoolSize int `yaml:"pool_size" json:"pool_size"`
}

// DefaultRedisConfig returns a RedisConfig with sensible defaults.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:       "localhost:6379",
		DB:         0,
		KeyPrefix:  "agentmatch:presence:",
		MaxRetries: 3,
		PoolSize:   10,
	}
}

// RedisStore is a Store sharing liveness across processes through Redis.
// Each live role holds one key with a ttl equal to its heartbeat ttl, so
// expiry needs no sweeper.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(cfg RedisConfig, logger *zap.Logger) (*RedisStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client := redis.NewClient(&redis.Options{
		Addr:       cfg.Addr,
		Password:   cfg.Password,
		DB:         cfg.DB,
		MaxRetries: cfg.MaxRetries,
		PoolSize:   cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultRedisConfig().KeyPrefix
	}

	return &RedisStore{
		client: client,
		prefix: prefix,
		logger: logger.With(zap.String("component", "presence_redis")),
	}, nil
}

// NewRedisStoreFromClient wraps an existing client, mainly for tests.
func NewRedisStoreFromClient(client *redis.Client, keyPrefix string, logger *zap.Logger) *RedisStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	if keyPrefix == "" {
		keyPrefix = DefaultRedisConfig().KeyPrefix
	}
	return &RedisStore{
		client: client,
		prefix: keyPrefix,
		logger: logger.With(zap.String("component", "presence_redis")),
	}
}

func (s *RedisStore) key(role capability.AgentRole) string {
	return s.prefix + string(role)
}

// Heartbeat marks the role live for the next ttl.
func (s *RedisStore) Heartbeat(ctx context.Context, role capability.AgentRole, ttl time.Duration) error {
	if role == "" {
		return fmt.Errorf("role is empty")
	}
	if ttl <= 0 {
		ttl = DefaultHeartbeatTTL
	}

	now := time.Now()
	status := Status{
		Role:          role,
		LastHeartbeat: now,
		ExpiresAt:     now.Add(ttl),
	}

	// Preserve a previously reported load across heartbeats.
	if prev, err := s.Get(ctx, role); err == nil && prev != nil {
		status.Load = prev.Load
	}

	data, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("marshal presence status: %w", err)
	}

	if err := s.client.Set(ctx, s.key(role), data, ttl).Err(); err != nil {
		s.logger.Error("heartbeat write failed", zap.String("role", string(role)), zap.Error(err))
		return fmt.Errorf("heartbeat write failed: %w", err)
	}
	return nil
}

// SetLoad updates the role's reported load. Offline roles are ignored.
// The key's remaining ttl is preserved.
func (s *RedisStore) SetLoad(ctx context.Context, role capability.AgentRole, load float64) error {
	if load < 0 || load > 1 {
		return fmt.Errorf("load %v outside [0, 1]", load)
	}

	status, err := s.Get(ctx, role)
	if err != nil {
		return err
	}
	if status == nil {
		return nil
	}

	status.Load = load
	data, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("marshal presence status: %w", err)
	}

	if err := s.client.Set(ctx, s.key(role), data, redis.KeepTTL).Err(); err != nil {
		return fmt.Errorf("load write failed: %w", err)
	}
	return nil
}

// Get returns the role's status, or nil when offline.
func (s *RedisStore) Get(ctx context.Context, role capability.AgentRole) (*Status, error) {
	val, err := s.client.Get(ctx, s.key(role)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("presence read failed: %w", err)
	}

	var status Status
	if err := json.Unmarshal([]byte(val), &status); err != nil {
		return nil, fmt.Errorf("unmarshal presence status: %w", err)
	}
	return &status, nil
}

// Online lists all roles with an unexpired heartbeat.
func (s *RedisStore) Online(ctx context.Context) ([]capability.AgentRole, error) {
	var roles []capability.AgentRole

	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		roles = append(roles, capability.AgentRole(strings.TrimPrefix(iter.Val(), s.prefix)))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("presence scan failed: %w", err)
	}
	return roles, nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
