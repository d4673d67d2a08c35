package presence

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kickai/agentmatch/capability"
)

// Status is the runtime state of one agent role.
type Status struct {
	// Role is the agent role the status describes.
	Role capability.AgentRole `json:"role"`

	// Load is the role's reported load in [0, 1].
	Load float64 `json:"load"`

	// LastHeartbeat is when the role last checked in.
	LastHeartbeat time.Time `json:"last_heartbeat"`

	// ExpiresAt is when the role is considered offline absent a new
	// heartbeat.
	ExpiresAt time.Time `json:"expires_at"`
}

// Store records agent heartbeats and answers liveness queries. A role with
// no unexpired heartbeat is offline; Get resolves it permissively to
// (nil, nil) rather than an error. Errors are reserved for infrastructure
// failures.
type Store interface {
	// Heartbeat marks the role live for the next ttl.
	Heartbeat(ctx context.Context, role capability.AgentRole, ttl time.Duration) error

	// SetLoad updates the role's reported load without extending its ttl.
	// Setting load for an offline role is a no-op.
	SetLoad(ctx context.Context, role capability.AgentRole, load float64) error

	// Get returns the role's status, or nil when the role is offline.
	Get(ctx context.Context, role capability.AgentRole) (*Status, error)

	// Online lists all roles with an unexpired heartbeat.
	Online(ctx context.Context) ([]capability.AgentRole, error)

	// Close releases the store's resources.
	Close() error
}

// DefaultHeartbeatTTL is applied when Heartbeat is called with a
// non-positive ttl.
const DefaultHeartbeatTTL = 30 * time.Second

// MemoryStore is an in-process Store backed by a mutex-guarded map.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[capability.AgentRole]*Status
	closed  bool
	logger  *zap.Logger
}

// NewMemoryStore creates a MemoryStore.
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryStore{
		entries: make(map[capability.AgentRole]*Status),
		logger:  logger.With(zap.String("component", "presence_memory")),
	}
}

// Heartbeat marks the role live for the next ttl.
func (s *MemoryStore) Heartbeat(ctx context.Context, role capability.AgentRole, ttl time.Duration) error {
	if role == "" {
		return fmt.Errorf("role is empty")
	}
	if ttl <= 0 {
		ttl = DefaultHeartbeatTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("presence store is closed")
	}

	now := time.Now()
	entry, ok := s.entries[role]
	if !ok || now.After(entry.ExpiresAt) {
		entry = &Status{Role: role}
		s.entries[role] = entry
	}
	entry.LastHeartbeat = now
	entry.ExpiresAt = now.Add(ttl)
	return nil
}

// SetLoad updates the role's reported load. Offline roles are ignored.
func (s *MemoryStore) SetLoad(ctx context.Context, role capability.AgentRole, load float64) error {
	if load < 0 || load > 1 {
		return fmt.Errorf("load %v outside [0, 1]", load)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("presence store is closed")
	}

	entry, ok := s.entries[role]
	if !ok || time.Now().After(entry.ExpiresAt) {
		return nil
	}
	entry.Load = load
	return nil
}

// Get returns the role's status, or nil when offline.
func (s *MemoryStore) Get(ctx context.Context, role capability.AgentRole) (*Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, fmt.Errorf("presence store is closed")
	}

	entry, ok := s.entries[role]
	if !ok || time.Now().After(entry.ExpiresAt) {
		return nil, nil
	}
	copied := *entry
	return &copied, nil
}

// Online lists all roles with an unexpired heartbeat.
func (s *MemoryStore) Online(ctx context.Context) ([]capability.AgentRole, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, fmt.Errorf("presence store is closed")
	}

	now := time.Now()
	roles := make([]capability.AgentRole, 0, len(s.entries))
	for role, entry := range s.entries {
		if now.Before(entry.ExpiresAt) {
			roles = append(roles, role)
		}
	}
	return roles, nil
}

// Close marks the store closed. Further calls fail.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.entries = nil
	return nil
}

var _ Store = (*MemoryStore)(nil)
