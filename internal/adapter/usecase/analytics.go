package usecase

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

// AnalyticsService serves campaign metrics.
type AnalyticsService struct {
	api port.PlatformAPI
	reader
}

var _ port.AnalyticsUseCase = (*AnalyticsService)(nil)

func NewAnalyticsService(api port.PlatformAPI, cache port.Cache, ttl time.Duration, logger *slog.Logger) *AnalyticsService {
	return &AnalyticsService{api: api, reader: reader{cache: cache, ttl: ttl, logger: logger}}
}

func (a *AnalyticsService) Metrics(ctx context.Context, s *domain.Session, filter domain.MetricsFilter) ([]domain.Metric, error) {
	if filter.Limit < 0 {
		return nil, &domain.ValidationError{
			Message: "validation failed",
			Fields:  []domain.FieldError{{Field: "limit", Message: "Limit must not be negative"}},
		}
	}
	return load(ctx, a.reader, userGroup(s.UserID, groupMetrics), metricsKey(filter), func(ctx context.Context) ([]domain.Metric, error) {
		return a.api.ListMetrics(ctx, s.Token, filter)
	})
}

func (a *AnalyticsService) Summary(ctx context.Context, s *domain.Session, filter domain.MetricsFilter) (domain.MetricsSummary, error) {
	metrics, err := a.Metrics(ctx, s, filter)
	if err != nil {
		return domain.MetricsSummary{}, err
	}
	return domain.Summarize(metrics), nil
}

// metricsKey encodes a filter canonically so equal filters share an entry.
func metricsKey(f domain.MetricsFilter) string {
	ids := slices.Clone(f.CampaignIDs)
	slices.Sort(ids)
	var b strings.Builder
	b.WriteString(f.CampaignID)
	b.WriteByte('|')
	b.WriteString(strings.Join(ids, ","))
	b.WriteByte('|')
	if f.Range != nil {
		b.WriteString(f.Range.Start + ".." + f.Range.End)
	}
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(f.Limit))
	return b.String()
}
