package usecase

import (
	"context"
	"log/slog"
	"time"

	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

// AccountService reads and mutates the linked advertising accounts.
type AccountService struct {
	api port.PlatformAPI
	reader
}

var _ port.AccountUseCase = (*AccountService)(nil)

func NewAccountService(api port.PlatformAPI, cache port.Cache, ttl time.Duration, logger *slog.Logger) *AccountService {
	return &AccountService{api: api, reader: reader{cache: cache, ttl: ttl, logger: logger}}
}

func (a *AccountService) List(ctx context.Context, s *domain.Session) ([]domain.MetaAccount, error) {
	return load(ctx, a.reader, userGroup(s.UserID, groupAccounts), "list", func(ctx context.Context) ([]domain.MetaAccount, error) {
		return a.api.ListAccounts(ctx, s.Token)
	})
}

// Refetch drops cached accounts and reads them again.
func (a *AccountService) Refetch(ctx context.Context, s *domain.Session) ([]domain.MetaAccount, error) {
	a.invalidate(ctx, s.UserID, groupAccounts)
	return a.List(ctx, s)
}

// Disconnect unlinks an account. Its campaigns and metrics disappear with
// it, so every dependent read is dropped.
func (a *AccountService) Disconnect(ctx context.Context, s *domain.Session, id string) error {
	if err := a.api.DisconnectAccount(ctx, s.Token, id); err != nil {
		return err
	}
	a.invalidate(ctx, s.UserID, groupAccounts, groupCampaigns, groupMetrics)
	return nil
}

func (a *AccountService) Sync(ctx context.Context, s *domain.Session, id string) error {
	if err := a.api.SyncAccount(ctx, s.Token, id); err != nil {
		return err
	}
	a.invalidate(ctx, s.UserID, groupAccounts)
	return nil
}
