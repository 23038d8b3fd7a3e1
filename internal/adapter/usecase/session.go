package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ads-manager/internal/config/configs"
	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

// SessionService issues and resolves dashboard sessions. The platform
// token never leaves the server; browsers only hold the session id.
type SessionService struct {
	store  port.SessionStore
	api    port.PlatformAPI
	cfg    configs.Session
	logger *slog.Logger
	now    func() time.Time
}

var _ port.SessionUseCase = (*SessionService)(nil)

// NewSessionService wires the session provider.
func NewSessionService(store port.SessionStore, api port.PlatformAPI, cfg configs.Session, logger *slog.Logger) *SessionService {
	return &SessionService{store: store, api: api, cfg: cfg, logger: logger, now: time.Now}
}

func (s *SessionService) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	if err := domain.Validate(creds); err != nil {
		return nil, err
	}
	res, err := s.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, res)
}

func (s *SessionService) Register(ctx context.Context, reg domain.Registration) (*domain.Session, error) {
	if err := domain.Validate(reg); err != nil {
		return nil, err
	}
	res, err := s.api.Register(ctx, reg)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, res)
}

func (s *SessionService) issue(ctx context.Context, res *domain.AuthResult) (*domain.Session, error) {
	now := s.now()
	sess := domain.Session{
		ID:        uuid.New(),
		UserID:    res.User.ID,
		User:      res.User,
		Token:     res.Token,
		ExpiresAt: s.tokenExpiry(res.Token, now),
		CreatedAt: now,
	}
	if err := s.store.Save(ctx, sess, s.storeTTL(sess.ExpiresAt, now)); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.logger.Info("session issued", slog.String("user_id", sess.UserID), slog.Time("expires_at", sess.ExpiresAt))
	return &sess, nil
}

// minRetention bounds how soon an expired session may leave the store.
const minRetention = time.Minute

// storeTTL outlives expiresAt by the retention window. A session evicted
// at expiry would look unknown and never produce the login redirect.
func (s *SessionService) storeTTL(expiresAt, now time.Time) time.Duration {
	return max(expiresAt.Sub(now), 0) + max(s.cfg.Retention, minRetention)
}

// tokenExpiry reads the exp claim without verifying the signature; the
// platform stays the authority on validity. Tokens without an exp get the
// configured TTL, and a past exp is kept so the session starts expired.
func (s *SessionService) tokenExpiry(token string, now time.Time) time.Time {
	fallback := now.Add(s.cfg.TTL)
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fallback
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}
	return exp.Time
}

// Current leaves expired sessions in the store; the caller drops them with
// Invalidate so that exactly one response redirects to the login view.
func (s *SessionService) Current(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	sess, err := s.store.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess.Expired(s.now(), s.cfg.ExpiryBuffer) {
		return nil, domain.ErrUnauthorized
	}
	return sess, nil
}

// Refresh re-reads the user from the platform and stores it on the session.
func (s *SessionService) Refresh(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
	user, err := s.api.Me(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	return s.storeUser(ctx, sess, user)
}

func (s *SessionService) UpdateProfile(ctx context.Context, sess *domain.Session, in domain.ProfileUpdate) (*domain.Session, error) {
	if err := domain.Validate(in); err != nil {
		return nil, err
	}
	user, err := s.api.UpdateProfile(ctx, sess.Token, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info("profile updated", slog.String("user_id", sess.UserID))
	return s.storeUser(ctx, sess, user)
}

// ChangePassword leaves the session in place; the platform decides whether
// the token survives.
func (s *SessionService) ChangePassword(ctx context.Context, sess *domain.Session, in domain.PasswordChange) error {
	if err := domain.Validate(in); err != nil {
		return err
	}
	if err := s.api.ChangePassword(ctx, sess.Token, in); err != nil {
		return err
	}
	s.logger.Info("password changed", slog.String("user_id", sess.UserID))
	return nil
}

func (s *SessionService) storeUser(ctx context.Context, sess *domain.Session, user *domain.User) (*domain.Session, error) {
	updated := *sess
	updated.User = *user
	if updated.User.ID == "" {
		updated.User.ID = sess.UserID
	}
	updated.UserID = updated.User.ID
	now := s.now()
	if sess.Expired(now, s.cfg.ExpiryBuffer) {
		return nil, domain.ErrUnauthorized
	}
	if err := s.store.Save(ctx, updated, s.storeTTL(updated.ExpiresAt, now)); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &updated, nil
}

func (s *SessionService) Logout(ctx context.Context, id uuid.UUID) error {
	if _, err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionService) Invalidate(ctx context.Context, id uuid.UUID) bool {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to invalidate session", slog.String("session_id", id.String()), slog.Any("error", err))
		return false
	}
	if removed {
		s.logger.Info("session invalidated", slog.String("session_id", id.String()))
	}
	return removed
}
