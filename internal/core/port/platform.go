package port

import (
	"context"

	"ads-manager/internal/core/domain"
)

// PlatformAPI is the outbound port to the remote Ads Platform REST API,
// which owns every user, account, campaign and metric. Implementations map
// transport outcomes onto the domain error taxonomy: domain.ErrUnauthorized,
// domain.ErrForbidden, domain.ErrNotFound, *domain.ValidationError and
// *domain.TransientError.
// Nothing is retried.
type PlatformAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error)
	Me(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, token string, in domain.ProfileUpdate) (*domain.User, error)
	ChangePassword(ctx context.Context, token string, in domain.PasswordChange) error

	ListMetaApps(ctx context.Context, token string) ([]domain.MetaApp, error)
	GetMetaApp(ctx context.Context, token, id string) (*domain.MetaApp, error)
	CreateMetaApp(ctx context.Context, token string, in domain.MetaAppInput) (*domain.MetaApp, error)
	UpdateMetaApp(ctx context.Context, token, id string, patch domain.MetaAppPatch) (*domain.MetaApp, error)
	DeleteMetaApp(ctx context.Context, token, id string) error
	VerifyMetaApp(ctx context.Context, token, id string) (*domain.MetaAppVerification, error)

	// ConnectURL returns the provider authorization URL for linking an
	// advertising account.
	ConnectURL(ctx context.Context, token string) (string, error)
	ListAccounts(ctx context.Context, token string) ([]domain.MetaAccount, error)
	DisconnectAccount(ctx context.Context, token, id string) error
	SyncAccount(ctx context.Context, token, id string) error

	ListCampaigns(ctx context.Context, token string, filter domain.CampaignFilter) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, token, id string) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, token string, req domain.CreateCampaignRequest) (*domain.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, token, id string, status domain.CampaignStatus) (*domain.Campaign, error)

	ListMetrics(ctx context.Context, token string, filter domain.MetricsFilter) ([]domain.Metric, error)

	ListPages(ctx context.Context, token string) ([]domain.Page, error)
	PageInsights(ctx context.Context, token, pageID string, q domain.InsightsQuery) ([]domain.PageInsight, error)
	CreatePagePost(ctx context.Context, token, pageID string, in domain.PagePostInput) (*domain.PagePost, error)
}
