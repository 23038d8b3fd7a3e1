package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"ads-manager/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSession() *domain.Session {
	return &domain.Session{
		ID:        uuid.New(),
		UserID:    "user-1",
		User:      domain.User{ID: "user-1", Email: "jane@example.com", Name: "Jane"},
		Token:     "platform-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// draftStore is a map backed DraftRepository that copies on every access
// like a real database would.
type draftStore struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]domain.Draft
	saves  int
}

func newDraftStore() *draftStore {
	return &draftStore{drafts: make(map[uuid.UUID]domain.Draft)}
}

func (s *draftStore) Create(_ context.Context, d *domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[d.ID] = *d
	return nil
}

func (s *draftStore) Get(_ context.Context, id uuid.UUID) (*domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

func (s *draftStore) Save(_ context.Context, d *domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[d.ID]; !ok {
		return domain.ErrNotFound
	}
	s.drafts[d.ID] = *d
	s.saves++
	return nil
}

func (s *draftStore) DeleteStale(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, d := range s.drafts {
		if d.Status != domain.DraftSubmitted && d.UpdatedAt.Before(before) {
			delete(s.drafts, id)
			n++
		}
	}
	return n, nil
}
