package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

// DraftRepository implements port.DraftRepository on PostgreSQL. Each
// builder section is one JSONB column so steps evolve without migrations.
type DraftRepository struct {
	pool *pgxpool.Pool
}

var _ port.DraftRepository = (*DraftRepository)(nil)

// NewDraftRepository returns a new repository instance.
func NewDraftRepository(pool *pgxpool.Pool) *DraftRepository {
	return &DraftRepository{pool: pool}
}

type draftSections struct {
	basics, budget, targeting, creative []byte
}

func encodeSections(d *domain.Draft) (draftSections, error) {
	var (
		s   draftSections
		err error
	)
	if s.basics, err = json.Marshal(d.Basics); err != nil {
		return s, fmt.Errorf("encode basics: %w", err)
	}
	if s.budget, err = json.Marshal(d.Budget); err != nil {
		return s, fmt.Errorf("encode budget: %w", err)
	}
	if s.targeting, err = json.Marshal(d.Targeting); err != nil {
		return s, fmt.Errorf("encode targeting: %w", err)
	}
	if s.creative, err = json.Marshal(d.Creative); err != nil {
		return s, fmt.Errorf("encode creative: %w", err)
	}
	return s, nil
}

func (s draftSections) decode(d *domain.Draft) error {
	if err := json.Unmarshal(s.basics, &d.Basics); err != nil {
		return fmt.Errorf("decode basics: %w", err)
	}
	if err := json.Unmarshal(s.budget, &d.Budget); err != nil {
		return fmt.Errorf("decode budget: %w", err)
	}
	if err := json.Unmarshal(s.targeting, &d.Targeting); err != nil {
		return fmt.Errorf("decode targeting: %w", err)
	}
	if err := json.Unmarshal(s.creative, &d.Creative); err != nil {
		return fmt.Errorf("decode creative: %w", err)
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create inserts a new draft.
func (r *DraftRepository) Create(ctx context.Context, d *domain.Draft) error {
	s, err := encodeSections(d)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaign_drafts
    (id, user_id, step, status, basics, budget, targeting, creative, campaign_id, last_error, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		d.ID, d.UserID, int16(d.Step), string(d.Status), s.basics, s.budget, s.targeting, s.creative,
		nullable(d.CampaignID), d.LastError, d.CreatedAt, d.UpdatedAt)
	return err
}

// Get returns a draft by id.
func (r *DraftRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	var (
		d          domain.Draft
		s          draftSections
		step       int16
		status     string
		campaignID *string
	)
	err := r.pool.QueryRow(ctx, `SELECT id, user_id, step, status, basics, budget, targeting, creative,
       campaign_id, last_error, created_at, updated_at
FROM campaign_drafts WHERE id = $1`, id).
		Scan(&d.ID, &d.UserID, &step, &status, &s.basics, &s.budget, &s.targeting, &s.creative,
			&campaignID, &d.LastError, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	d.Step = domain.Step(step)
	d.Status = domain.DraftStatus(status)
	if campaignID != nil {
		d.CampaignID = *campaignID
	}
	if err = s.decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Save overwrites every mutable column of an existing draft.
func (r *DraftRepository) Save(ctx context.Context, d *domain.Draft) error {
	s, err := encodeSections(d)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `UPDATE campaign_drafts
SET step = $2, status = $3, basics = $4, budget = $5, targeting = $6, creative = $7,
    campaign_id = $8, last_error = $9, updated_at = $10
WHERE id = $1`,
		d.ID, int16(d.Step), string(d.Status), s.basics, s.budget, s.targeting, s.creative,
		nullable(d.CampaignID), d.LastError, d.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteStale removes unsubmitted drafts last touched before the cutoff.
func (r *DraftRepository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaign_drafts WHERE status <> 'submitted' AND updated_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
