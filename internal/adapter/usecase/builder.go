package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

// BuilderService runs the multi-step campaign builder on top of stored
// drafts. The remote platform only sees the final composite request.
type BuilderService struct {
	drafts    port.DraftRepository
	accounts  port.AccountUseCase
	campaigns port.CampaignUseCase
	logger    *slog.Logger
	now       func() time.Time

	mu       sync.Mutex
	inflight map[uuid.UUID]struct{}
}

var _ port.BuilderUseCase = (*BuilderService)(nil)

func NewBuilderService(drafts port.DraftRepository, accounts port.AccountUseCase, campaigns port.CampaignUseCase, logger *slog.Logger) *BuilderService {
	return &BuilderService{
		drafts:    drafts,
		accounts:  accounts,
		campaigns: campaigns,
		logger:    logger,
		now:       time.Now,
		inflight:  make(map[uuid.UUID]struct{}),
	}
}

func (b *BuilderService) Start(ctx context.Context, s *domain.Session) (*port.DraftView, error) {
	d := domain.NewDraft(s.UserID, b.now().UTC())
	if err := b.drafts.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}
	return b.view(ctx, s, d)
}

func (b *BuilderService) Get(ctx context.Context, s *domain.Session, id uuid.UUID) (*port.DraftView, error) {
	d, err := b.load(ctx, s, id)
	if err != nil {
		return nil, err
	}
	return b.view(ctx, s, d)
}

func (b *BuilderService) UpdateBasics(ctx context.Context, s *domain.Session, id uuid.UUID, in domain.BasicsSection) (*port.DraftView, error) {
	return b.update(ctx, s, id, func(d *domain.Draft) error { return d.ApplyBasics(in) })
}

func (b *BuilderService) UpdateBudget(ctx context.Context, s *domain.Session, id uuid.UUID, in domain.BudgetSection) (*port.DraftView, error) {
	return b.update(ctx, s, id, func(d *domain.Draft) error { return d.ApplyBudget(in) })
}

func (b *BuilderService) UpdateTargeting(ctx context.Context, s *domain.Session, id uuid.UUID, in domain.Targeting) (*port.DraftView, error) {
	return b.update(ctx, s, id, func(d *domain.Draft) error { return d.ApplyTargeting(in) })
}

func (b *BuilderService) UpdateCreative(ctx context.Context, s *domain.Session, id uuid.UUID, in domain.CreativeSection) (*port.DraftView, error) {
	return b.update(ctx, s, id, func(d *domain.Draft) error { return d.ApplyCreative(in) })
}

// Next advances only when the current step validates; a failing step
// leaves the stored draft untouched.
func (b *BuilderService) Next(ctx context.Context, s *domain.Session, id uuid.UUID) (*port.DraftView, error) {
	return b.update(ctx, s, id, (*domain.Draft).Next)
}

func (b *BuilderService) Previous(ctx context.Context, s *domain.Session, id uuid.UUID) (*port.DraftView, error) {
	return b.update(ctx, s, id, (*domain.Draft).Previous)
}

// Submit sends the merged draft to the platform exactly once. A submit or
// edit of the same draft while another one is pending is rejected with
// domain.ErrSubmissionInProgress. On failure the draft keeps every field
// and records the error message.
func (b *BuilderService) Submit(ctx context.Context, s *domain.Session, id uuid.UUID) (*domain.Campaign, error) {
	if !b.acquire(id) {
		return nil, domain.ErrSubmissionInProgress
	}
	defer b.release(id)

	d, err := b.load(ctx, s, id)
	if err != nil {
		return nil, err
	}
	req, err := d.BeginSubmit()
	if err != nil {
		return nil, err
	}

	cmp, err := b.campaigns.Create(ctx, s, req)
	if err != nil {
		d.FailSubmit(err)
		b.save(ctx, d)
		b.logger.Warn("draft submission failed", slog.String("draft_id", id.String()), slog.Any("error", err))
		return nil, err
	}
	d.CompleteSubmit(cmp.ID)
	b.save(ctx, d)
	return cmp, nil
}

// PurgeStale removes unsubmitted drafts untouched for longer than olderThan.
func (b *BuilderService) PurgeStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	n, err := b.drafts.DeleteStale(ctx, b.now().UTC().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("purge drafts: %w", err)
	}
	return n, nil
}

func (b *BuilderService) acquire(id uuid.UUID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, busy := b.inflight[id]; busy {
		return false
	}
	b.inflight[id] = struct{}{}
	return true
}

func (b *BuilderService) release(id uuid.UUID) {
	b.mu.Lock()
	delete(b.inflight, id)
	b.mu.Unlock()
}

func (b *BuilderService) load(ctx context.Context, s *domain.Session, id uuid.UUID) (*domain.Draft, error) {
	d, err := b.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.UserID != s.UserID {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (b *BuilderService) update(ctx context.Context, s *domain.Session, id uuid.UUID, apply func(*domain.Draft) error) (*port.DraftView, error) {
	if !b.acquire(id) {
		return nil, domain.ErrSubmissionInProgress
	}
	defer b.release(id)

	d, err := b.load(ctx, s, id)
	if err != nil {
		return nil, err
	}
	if err = apply(d); err != nil {
		return nil, err
	}
	d.UpdatedAt = b.now().UTC()
	if err = b.drafts.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return b.view(ctx, s, d)
}

// save persists the outcome of a submission. The platform already acted,
// so a storage failure is logged rather than returned.
func (b *BuilderService) save(ctx context.Context, d *domain.Draft) {
	d.UpdatedAt = b.now().UTC()
	if err := b.drafts.Save(ctx, d); err != nil {
		b.logger.Error("failed to save draft", slog.String("draft_id", d.ID.String()), slog.Any("error", err))
	}
}

func (b *BuilderService) view(ctx context.Context, s *domain.Session, d *domain.Draft) (*port.DraftView, error) {
	v := &port.DraftView{Draft: d, Estimates: domain.Estimate(d)}
	if d.Basics.MetaAccountID == "" {
		return v, nil
	}
	accounts, err := b.accounts.List(ctx, s)
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return nil, err
	case err != nil:
		b.logger.Warn("account currency unavailable", slog.String("draft_id", d.ID.String()), slog.Any("error", err))
	default:
		if acc, ok := domain.FindAccount(accounts, d.Basics.MetaAccountID); ok {
			v.Currency = acc.Currency
		}
	}
	return v, nil
}
