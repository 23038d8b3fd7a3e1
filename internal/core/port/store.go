package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"ads-manager/internal/core/domain"
)

// ErrCacheMiss is returned by Cache.Get for absent or expired entries.
var ErrCacheMiss = errors.New("cache miss")

// Cache holds transient copies of server-owned collections. Entries live
// in groups (entity type scoped to a user) so a mutation can drop every
// cached read that depends on it at once. Concurrent writers are not
// coordinated: the last Set wins.
type Cache interface {
	Get(ctx context.Context, group, key string) ([]byte, error)
	Set(ctx context.Context, group, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, groups ...string) error
}

// SessionStore persists sessions between browser requests.
type SessionStore interface {
	Save(ctx context.Context, s domain.Session, ttl time.Duration) error
	// Get returns domain.ErrNotFound for unknown sessions.
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	// Delete reports whether this call removed the session. Of several
	// concurrent deletes exactly one observes true.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ConnectStateStore keeps the "connect in progress" marker that survives
// the navigation to the OAuth provider and back.
type ConnectStateStore interface {
	MarkPending(ctx context.Context, userID string, ttl time.Duration) error
	// Clear removes the marker and reports whether it was pending.
	Clear(ctx context.Context, userID string) (bool, error)
}

// DraftRepository persists campaign builder drafts.
type DraftRepository interface {
	Create(ctx context.Context, d *domain.Draft) error
	// Get returns domain.ErrNotFound for unknown drafts.
	Get(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	Save(ctx context.Context, d *domain.Draft) error
	// DeleteStale removes unsubmitted drafts untouched since before.
	DeleteStale(ctx context.Context, before time.Time) (int64, error)
}
