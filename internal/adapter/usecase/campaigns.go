package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

// CampaignService reads campaigns and changes their status.
type CampaignService struct {
	api      port.PlatformAPI
	parallel int
	reader
}

var _ port.CampaignUseCase = (*CampaignService)(nil)

func NewCampaignService(api port.PlatformAPI, cache port.Cache, ttl time.Duration, parallel int, logger *slog.Logger) *CampaignService {
	if parallel < 1 {
		parallel = 1
	}
	return &CampaignService{api: api, parallel: parallel, reader: reader{cache: cache, ttl: ttl, logger: logger}}
}

// List fetches by status and account and applies the name search locally.
func (c *CampaignService) List(ctx context.Context, s *domain.Session, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, invalidStatus(filter.Status)
	}
	remote := domain.CampaignFilter{Status: filter.Status, MetaAccountID: filter.MetaAccountID}
	key := "list:" + string(remote.Status) + ":" + remote.MetaAccountID
	all, err := load(ctx, c.reader, userGroup(s.UserID, groupCampaigns), key, func(ctx context.Context) ([]domain.Campaign, error) {
		return c.api.ListCampaigns(ctx, s.Token, remote)
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Campaign, 0, len(all))
	for _, cmp := range all {
		if filter.Matches(cmp) {
			out = append(out, cmp)
		}
	}
	return out, nil
}

func (c *CampaignService) Get(ctx context.Context, s *domain.Session, id string) (*domain.Campaign, error) {
	return load(ctx, c.reader, userGroup(s.UserID, groupCampaigns), "id:"+id, func(ctx context.Context) (*domain.Campaign, error) {
		return c.api.GetCampaign(ctx, s.Token, id)
	})
}

func (c *CampaignService) Create(ctx context.Context, s *domain.Session, req domain.CreateCampaignRequest) (*domain.Campaign, error) {
	cmp, err := c.api.CreateCampaign(ctx, s.Token, req)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, s.UserID, groupCampaigns)
	c.logger.Info("campaign created", slog.String("user_id", s.UserID), slog.String("campaign_id", cmp.ID))
	return cmp, nil
}

func (c *CampaignService) UpdateStatus(ctx context.Context, s *domain.Session, id string, status domain.CampaignStatus) (*domain.Campaign, error) {
	if !status.Valid() {
		return nil, invalidStatus(status)
	}
	cmp, err := c.api.UpdateCampaignStatus(ctx, s.Token, id, status)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, s.UserID, groupCampaigns, groupMetrics)
	return cmp, nil
}

// BulkUpdateStatus changes every campaign independently and reports each
// failure. A rejected session aborts the remaining updates.
func (c *CampaignService) BulkUpdateStatus(ctx context.Context, s *domain.Session, ids []string, status domain.CampaignStatus) (port.BulkResult, error) {
	res := port.BulkResult{Updated: []string{}}
	if !status.Valid() {
		return res, invalidStatus(status)
	}
	if len(ids) == 0 {
		return res, &domain.ValidationError{
			Message: "validation failed",
			Fields:  []domain.FieldError{{Field: "campaignIds", Message: "Select at least one campaign"}},
		}
	}

	errs := make([]error, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallel)
	for i, id := range ids {
		g.Go(func() error {
			_, err := c.api.UpdateCampaignStatus(gctx, s.Token, id, status)
			errs[i] = err
			if errors.Is(err, domain.ErrUnauthorized) {
				return err
			}
			return nil
		})
	}
	abort := g.Wait()

	for i, id := range ids {
		if errs[i] == nil {
			res.Updated = append(res.Updated, id)
			continue
		}
		if res.Failed == nil {
			res.Failed = make(map[string]string)
		}
		res.Failed[id] = errs[i].Error()
	}
	if len(res.Updated) > 0 {
		c.invalidate(ctx, s.UserID, groupCampaigns, groupMetrics)
	}
	return res, abort
}

func invalidStatus(status domain.CampaignStatus) error {
	return &domain.ValidationError{
		Message: "validation failed",
		Fields:  []domain.FieldError{{Field: "status", Message: "Unknown campaign status " + string(status)}},
	}
}
