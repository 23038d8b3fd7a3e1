package port

import (
	"context"

	"github.com/google/uuid"

	"ads-manager/internal/core/domain"
)

// SessionUseCase is the session provider handed to every request.
type SessionUseCase interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.Session, error)
	// Current resolves a session id; expired or unknown sessions yield
	// domain.ErrUnauthorized. Expired sessions stay stored until Invalidate.
	Current(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Refresh(ctx context.Context, s *domain.Session) (*domain.Session, error)
	UpdateProfile(ctx context.Context, s *domain.Session, in domain.ProfileUpdate) (*domain.Session, error)
	ChangePassword(ctx context.Context, s *domain.Session, in domain.PasswordChange) error
	Logout(ctx context.Context, id uuid.UUID) error
	// Invalidate drops a session the platform rejected. It returns true
	// only for the call that removed it, so only one response redirects
	// to the login view.
	Invalidate(ctx context.Context, id uuid.UUID) bool
}

// AccountUseCase reads and mutates linked advertising accounts.
type AccountUseCase interface {
	List(ctx context.Context, s *domain.Session) ([]domain.MetaAccount, error)
	Disconnect(ctx context.Context, s *domain.Session, id string) error
	Sync(ctx context.Context, s *domain.Session, id string) error
}

// MetaAppUseCase manages the developer apps accounts connect through.
type MetaAppUseCase interface {
	List(ctx context.Context, s *domain.Session) ([]domain.MetaApp, error)
	Get(ctx context.Context, s *domain.Session, id string) (*domain.MetaApp, error)
	Create(ctx context.Context, s *domain.Session, in domain.MetaAppInput) (*domain.MetaApp, error)
	Update(ctx context.Context, s *domain.Session, id string, patch domain.MetaAppPatch) (*domain.MetaApp, error)
	Delete(ctx context.Context, s *domain.Session, id string) error
	Verify(ctx context.Context, s *domain.Session, id string) (*domain.MetaAppVerification, error)
}

// PageUseCase reads connected Facebook pages and publishes to them.
type PageUseCase interface {
	List(ctx context.Context, s *domain.Session) ([]domain.Page, error)
	Insights(ctx context.Context, s *domain.Session, pageID string, q domain.InsightsQuery) ([]domain.PageInsight, error)
	Publish(ctx context.Context, s *domain.Session, pageID string, in domain.PagePostInput) (*domain.PagePost, error)
}

// ConnectUseCase drives the OAuth account connect flow.
type ConnectUseCase interface {
	Begin(ctx context.Context, s *domain.Session) (string, error)
	Callback(ctx context.Context, s *domain.Session, connected, errCode string) (domain.ConnectOutcome, error)
	Resume(ctx context.Context, s *domain.Session) (bool, error)
}

// BulkResult reports a bulk status change per campaign.
type BulkResult struct {
	Updated []string          `json:"updated"`
	Failed  map[string]string `json:"failed,omitempty"`
}

// CampaignUseCase reads campaigns and changes their status.
type CampaignUseCase interface {
	List(ctx context.Context, s *domain.Session, filter domain.CampaignFilter) ([]domain.Campaign, error)
	Get(ctx context.Context, s *domain.Session, id string) (*domain.Campaign, error)
	Create(ctx context.Context, s *domain.Session, req domain.CreateCampaignRequest) (*domain.Campaign, error)
	UpdateStatus(ctx context.Context, s *domain.Session, id string, status domain.CampaignStatus) (*domain.Campaign, error)
	BulkUpdateStatus(ctx context.Context, s *domain.Session, ids []string, status domain.CampaignStatus) (BulkResult, error)
}

// AnalyticsUseCase serves campaign metrics.
type AnalyticsUseCase interface {
	Metrics(ctx context.Context, s *domain.Session, filter domain.MetricsFilter) ([]domain.Metric, error)
	Summary(ctx context.Context, s *domain.Session, filter domain.MetricsFilter) (domain.MetricsSummary, error)
}

// DraftView is a draft plus the values derived from it for display.
type DraftView struct {
	*domain.Draft
	// Currency of the selected account, empty until one is chosen.
	Currency  string           `json:"currency,omitempty"`
	Estimates domain.Estimates `json:"estimates"`
}

// BuilderUseCase is the multi-step campaign builder.
type BuilderUseCase interface {
	Start(ctx context.Context, s *domain.Session) (*DraftView, error)
	Get(ctx context.Context, s *domain.Session, id uuid.UUID) (*DraftView, error)
	UpdateBasics(ctx context.Context, s *domain.Session, id uuid.UUID, in domain.BasicsSection) (*DraftView, error)
	UpdateBudget(ctx context.Context, s *domain.Session, id uuid.UUID, in domain.BudgetSection) (*DraftView, error)
	UpdateTargeting(ctx context.Context, s *domain.Session, id uuid.UUID, in domain.Targeting) (*DraftView, error)
	UpdateCreative(ctx context.Context, s *domain.Session, id uuid.UUID, in domain.CreativeSection) (*DraftView, error)
	Next(ctx context.Context, s *domain.Session, id uuid.UUID) (*DraftView, error)
	Previous(ctx context.Context, s *domain.Session, id uuid.UUID) (*DraftView, error)
	Submit(ctx context.Context, s *domain.Session, id uuid.UUID) (*domain.Campaign, error)
}
