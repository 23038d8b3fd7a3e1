package usecase

import (
	"context"
	"log/slog"
	"time"

	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

// MetaAppService manages the developer apps registered for a user.
type MetaAppService struct {
	api      port.PlatformAPI
	sessions port.SessionUseCase
	reader
}

var _ port.MetaAppUseCase = (*MetaAppService)(nil)

func NewMetaAppService(api port.PlatformAPI, sessions port.SessionUseCase, cache port.Cache, ttl time.Duration, logger *slog.Logger) *MetaAppService {
	return &MetaAppService{api: api, sessions: sessions, reader: reader{cache: cache, ttl: ttl, logger: logger}}
}

func (m *MetaAppService) List(ctx context.Context, s *domain.Session) ([]domain.MetaApp, error) {
	return load(ctx, m.reader, userGroup(s.UserID, groupMetaApps), "list", func(ctx context.Context) ([]domain.MetaApp, error) {
		return m.api.ListMetaApps(ctx, s.Token)
	})
}

func (m *MetaAppService) Get(ctx context.Context, s *domain.Session, id string) (*domain.MetaApp, error) {
	return load(ctx, m.reader, userGroup(s.UserID, groupMetaApps), "id:"+id, func(ctx context.Context) (*domain.MetaApp, error) {
		return m.api.GetMetaApp(ctx, s.Token, id)
	})
}

// Create registers an app. The stored user lists its apps, so the session
// is refreshed as well.
func (m *MetaAppService) Create(ctx context.Context, s *domain.Session, in domain.MetaAppInput) (*domain.MetaApp, error) {
	if err := domain.Validate(in); err != nil {
		return nil, err
	}
	app, err := m.api.CreateMetaApp(ctx, s.Token, in)
	if err != nil {
		return nil, err
	}
	m.invalidate(ctx, s.UserID, groupMetaApps)
	if _, err = m.sessions.Refresh(ctx, s); err != nil {
		m.logger.Warn("session user not refreshed", slog.String("user_id", s.UserID), slog.Any("error", err))
	}
	m.logger.Info("meta app created", slog.String("user_id", s.UserID), slog.String("meta_app_id", app.ID))
	return app, nil
}

func (m *MetaAppService) Update(ctx context.Context, s *domain.Session, id string, patch domain.MetaAppPatch) (*domain.MetaApp, error) {
	if err := patch.Check(); err != nil {
		return nil, err
	}
	app, err := m.api.UpdateMetaApp(ctx, s.Token, id, patch)
	if err != nil {
		return nil, err
	}
	m.invalidate(ctx, s.UserID, groupMetaApps)
	return app, nil
}

// Delete removes an app together with the accounts linked through it, so
// every read that depends on those accounts is dropped.
func (m *MetaAppService) Delete(ctx context.Context, s *domain.Session, id string) error {
	if err := m.api.DeleteMetaApp(ctx, s.Token, id); err != nil {
		return err
	}
	m.invalidate(ctx, s.UserID, groupMetaApps, groupAccounts, groupCampaigns, groupMetrics)
	m.logger.Info("meta app deleted", slog.String("user_id", s.UserID), slog.String("meta_app_id", id))
	return nil
}

func (m *MetaAppService) Verify(ctx context.Context, s *domain.Session, id string) (*domain.MetaAppVerification, error) {
	v, err := m.api.VerifyMetaApp(ctx, s.Token, id)
	if err != nil {
		return nil, err
	}
	m.invalidate(ctx, s.UserID, groupMetaApps)
	return v, nil
}
