package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

// PageService reads connected Facebook pages and publishes posts.
type PageService struct {
	api port.PlatformAPI
	reader
}

var _ port.PageUseCase = (*PageService)(nil)

func NewPageService(api port.PlatformAPI, cache port.Cache, ttl time.Duration, logger *slog.Logger) *PageService {
	return &PageService{api: api, reader: reader{cache: cache, ttl: ttl, logger: logger}}
}

func (p *PageService) List(ctx context.Context, s *domain.Session) ([]domain.Page, error) {
	return load(ctx, p.reader, userGroup(s.UserID, groupPages), "list", func(ctx context.Context) ([]domain.Page, error) {
		return p.api.ListPages(ctx, s.Token)
	})
}

func (p *PageService) Insights(ctx context.Context, s *domain.Session, pageID string, q domain.InsightsQuery) ([]domain.PageInsight, error) {
	if err := domain.Validate(q); err != nil {
		return nil, err
	}
	key := "insights:" + pageID + ":" + strings.Join(q.Metrics, ",") + ":" + q.Period
	return load(ctx, p.reader, userGroup(s.UserID, groupPages), key, func(ctx context.Context) ([]domain.PageInsight, error) {
		return p.api.PageInsights(ctx, s.Token, pageID, q)
	})
}

func (p *PageService) Publish(ctx context.Context, s *domain.Session, pageID string, in domain.PagePostInput) (*domain.PagePost, error) {
	if err := domain.Validate(in); err != nil {
		return nil, err
	}
	post, err := p.api.CreatePagePost(ctx, s.Token, pageID, in)
	if err != nil {
		return nil, err
	}
	p.invalidate(ctx, s.UserID, groupPages)
	p.logger.Info("page post published", slog.String("user_id", s.UserID), slog.String("page_id", pageID), slog.String("post_id", post.ID))
	return post, nil
}
