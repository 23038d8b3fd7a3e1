package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ads-manager/internal/config/configs"
	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

type accountRefetcher interface {
	Refetch(ctx context.Context, s *domain.Session) ([]domain.MetaAccount, error)
}

// ConnectService links advertising accounts through the provider's OAuth
// consent screen. The platform handles the code exchange; this side only
// starts the flow and interprets the redirect back.
type ConnectService struct {
	api      port.PlatformAPI
	markers  port.ConnectStateStore
	accounts accountRefetcher
	sessions port.SessionUseCase
	cfg      configs.Connect
	logger   *slog.Logger
}

var _ port.ConnectUseCase = (*ConnectService)(nil)

func NewConnectService(api port.PlatformAPI, markers port.ConnectStateStore, accounts accountRefetcher, sessions port.SessionUseCase, cfg configs.Connect, logger *slog.Logger) *ConnectService {
	return &ConnectService{api: api, markers: markers, accounts: accounts, sessions: sessions, cfg: cfg, logger: logger}
}

// Begin returns the authorization URL and marks a connect as pending.
func (c *ConnectService) Begin(ctx context.Context, s *domain.Session) (string, error) {
	authURL, err := c.api.ConnectURL(ctx, s.Token)
	if err != nil {
		return "", err
	}
	if err = c.markers.MarkPending(ctx, s.UserID, c.cfg.MarkerTTL); err != nil {
		return "", fmt.Errorf("mark connect pending: %w", err)
	}
	c.logger.Info("account connect started", slog.String("user_id", s.UserID))
	return authURL, nil
}

// Callback interprets the provider redirect. An error code wins over a
// success flag. The pending marker is cleared in every case.
func (c *ConnectService) Callback(ctx context.Context, s *domain.Session, connected, errCode string) (domain.ConnectOutcome, error) {
	pending := c.clear(ctx, s.UserID)
	out := domain.ConnectOutcome{Status: domain.ConnectUnknown, RedirectTo: c.cfg.DefaultView}

	switch {
	case errCode != "":
		out.Status = domain.ConnectFailed
		out.Message = domain.ConnectErrorMessage(errCode)
		out.RedirectAfter = c.cfg.FailureDelay
		c.logger.Warn("account connect failed", slog.String("user_id", s.UserID), slog.String("code", errCode))
		return out, nil
	case connected == "true":
		out.Status = domain.ConnectSucceeded
		out.Message = domain.ConnectSuccessMessage
		out.RedirectAfter = c.cfg.SuccessDelay
		refetched, err := c.refetch(ctx, s)
		if err != nil {
			return out, err
		}
		out.Refetched = refetched
		if _, err = c.sessions.Refresh(ctx, s); err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return out, err
			}
			c.logger.Warn("user refresh after connect failed", slog.Any("error", err))
		}
		return out, nil
	case pending:
		refetched, err := c.refetch(ctx, s)
		out.Refetched = refetched
		return out, err
	}
	return out, nil
}

// Resume handles a user who came back without passing the callback. It
// re-fetches accounts once if a connect was pending.
func (c *ConnectService) Resume(ctx context.Context, s *domain.Session) (bool, error) {
	if !c.clear(ctx, s.UserID) {
		return false, nil
	}
	if _, err := c.refetch(ctx, s); err != nil {
		return false, err
	}
	return true, nil
}

func (c *ConnectService) clear(ctx context.Context, userID string) bool {
	pending, err := c.markers.Clear(ctx, userID)
	if err != nil {
		c.logger.Warn("failed to clear connect marker", slog.String("user_id", userID), slog.Any("error", err))
	}
	return pending
}

// refetch forces an accounts reload. Only a rejected session is returned;
// other failures leave the stale list to the next read.
func (c *ConnectService) refetch(ctx context.Context, s *domain.Session) (bool, error) {
	_, err := c.accounts.Refetch(ctx, s)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrUnauthorized):
		return false, err
	default:
		c.logger.Warn("accounts refetch failed", slog.Any("error", err))
		return false, nil
	}
}
