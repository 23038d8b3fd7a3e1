package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"ads-manager/internal/core/port"
)

// Cache groups. Each group is scoped to one user so a mutation only drops
// that user's reads.
const (
	groupAccounts  = "accounts"
	groupCampaigns = "campaigns"
	groupMetrics   = "metrics"
	groupMetaApps  = "meta-apps"
	groupPages     = "pages"
)

func userGroup(userID, entity string) string {
	return userID + ":" + entity
}

// reader serves remote reads through the cache. A failing cache is logged
// and bypassed; it never fails the read itself.
type reader struct {
	cache  port.Cache
	ttl    time.Duration
	logger *slog.Logger
}

func load[T any](ctx context.Context, r reader, group, key string, fetch func(context.Context) (T, error)) (T, error) {
	var out T
	raw, err := r.cache.Get(ctx, group, key)
	switch {
	case err == nil:
		if err = json.Unmarshal(raw, &out); err == nil {
			return out, nil
		}
		r.logger.Warn("discarding undecodable cache entry", slog.String("group", group), slog.String("key", key), slog.Any("error", err))
	case !errors.Is(err, port.ErrCacheMiss):
		r.logger.Warn("cache read failed", slog.String("group", group), slog.Any("error", err))
	}

	out, err = fetch(ctx)
	if err != nil {
		return out, err
	}
	if raw, err = json.Marshal(out); err == nil {
		err = r.cache.Set(ctx, group, key, raw, r.ttl)
	}
	if err != nil {
		r.logger.Warn("cache write failed", slog.String("group", group), slog.Any("error", err))
	}
	return out, nil
}

func (r reader) invalidate(ctx context.Context, userID string, entities ...string) {
	groups := make([]string, 0, len(entities))
	for _, e := range entities {
		groups = append(groups, userGroup(userID, e))
	}
	if err := r.cache.Invalidate(ctx, groups...); err != nil {
		r.logger.Error("cache invalidation failed", slog.Any("groups", groups), slog.Any("error", err))
	}
}
