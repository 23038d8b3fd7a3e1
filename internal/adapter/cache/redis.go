package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

// Connect initializes a Redis client from URL or host:port input and
// verifies it answers a ping.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: addr})
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// RedisCache implements port.Cache. Each entry is its own key with a TTL;
// a set per group tracks the member keys so a group can be dropped at once.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache returns a cache backed by client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func groupKey(group string) string { return "ads:cache:" + group }

func entryKey(group, key string) string { return "ads:cache:" + group + ":" + key }

// Get returns port.ErrCacheMiss for absent entries.
func (c *RedisCache) Get(ctx context.Context, group, key string) ([]byte, error) {
	raw, err := c.client.Get(ctx, entryKey(group, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, port.ErrCacheMiss
	}
	return raw, err
}

// Set stores value under group/key for ttl.
func (c *RedisCache) Set(ctx context.Context, group, key string, value []byte, ttl time.Duration) error {
	ek := entryKey(group, key)
	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, ek, value, ttl)
		p.SAdd(ctx, groupKey(group), ek)
		p.Expire(ctx, groupKey(group), 2*ttl)
		return nil
	})
	return err
}

// Invalidate drops every entry of the given groups.
func (c *RedisCache) Invalidate(ctx context.Context, groups ...string) error {
	for _, g := range groups {
		members, err := c.client.SMembers(ctx, groupKey(g)).Result()
		if err != nil {
			return err
		}
		keys := append(members, groupKey(g))
		if err = c.client.Del(ctx, keys...).Err(); err != nil {
			return err
		}
	}
	return nil
}

// RedisSessionStore implements port.SessionStore.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates the session store adapter.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(id uuid.UUID) string { return "ads:session:" + id.String() }

func (s *RedisSessionStore) Save(ctx context.Context, sess domain.Session, ttl time.Duration) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sess.ID), raw, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var out domain.Session
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := s.client.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RedisConnectStore implements port.ConnectStateStore.
type RedisConnectStore struct {
	client *redis.Client
}

// NewRedisConnectStore creates the connect marker adapter.
func NewRedisConnectStore(client *redis.Client) *RedisConnectStore {
	return &RedisConnectStore{client: client}
}

func connectKey(userID string) string { return "ads:connect:pending:" + userID }

func (s *RedisConnectStore) MarkPending(ctx context.Context, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, connectKey(userID), "1", ttl).Err()
}

func (s *RedisConnectStore) Clear(ctx context.Context, userID string) (bool, error) {
	n, err := s.client.Del(ctx, connectKey(userID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
