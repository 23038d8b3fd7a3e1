package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

type memoryEntry struct {
	value   []byte
	expires time.Time
}

func (e memoryEntry) live(now time.Time) bool {
	return e.expires.IsZero() || now.Before(e.expires)
}

// MemoryCache is an in-process port.Cache for single-instance setups.
type MemoryCache struct {
	mu     sync.Mutex
	groups map[string]map[string]memoryEntry
	now    func() time.Time
}

// NewMemoryCache returns an empty cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{groups: make(map[string]map[string]memoryEntry), now: time.Now}
}

func (c *MemoryCache) Get(_ context.Context, group, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.groups[group][key]
	if !ok || !e.live(c.now()) {
		return nil, port.ErrCacheMiss
	}
	return e.value, nil
}

func (c *MemoryCache) Set(_ context.Context, group, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, ok := c.groups[group]
	if !ok {
		g = make(map[string]memoryEntry)
		c.groups[group] = g
	}
	e := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expires = c.now().Add(ttl)
	}
	g[key] = e
	return nil
}

func (c *MemoryCache) Invalidate(_ context.Context, groups ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, g := range groups {
		delete(c.groups, g)
	}
	return nil
}

// MemorySessionStore is an in-process port.SessionStore.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]memorySession
	now      func() time.Time
}

type memorySession struct {
	s       domain.Session
	expires time.Time
}

// NewMemorySessionStore returns an empty session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[uuid.UUID]memorySession), now: time.Now}
}

func (m *MemorySessionStore) Save(_ context.Context, s domain.Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = memorySession{s: s, expires: m.now().Add(ttl)}
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id uuid.UUID) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ms, ok := m.sessions[id]
	if !ok || !m.now().Before(ms.expires) {
		delete(m.sessions, id)
		return nil, domain.ErrNotFound
	}
	s := ms.s
	return &s, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	return ok, nil
}

// MemoryConnectStore is an in-process port.ConnectStateStore.
type MemoryConnectStore struct {
	mu      sync.Mutex
	pending map[string]time.Time
	now     func() time.Time
}

// NewMemoryConnectStore returns a store with no pending markers.
func NewMemoryConnectStore() *MemoryConnectStore {
	return &MemoryConnectStore{pending: make(map[string]time.Time), now: time.Now}
}

func (m *MemoryConnectStore) MarkPending(_ context.Context, userID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[userID] = m.now().Add(ttl)
	return nil
}

func (m *MemoryConnectStore) Clear(_ context.Context, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exp, ok := m.pending[userID]
	delete(m.pending, userID)
	return ok && m.now().Before(exp), nil
}
