package auth

import (
	"context"
	"fmt"
	"herbal/internal/config"
	"strings"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const revokedKeyPrefix = "herbal:session:revoked:"

// RevocationStore remembers logged out session IDs until the token would
// have expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, id string, until time.Time) error
	IsRevoked(ctx context.Context, id string) (bool, error)
}

// NewRevocationStore returns a Redis backed store when REDIS_ADDR is set and
// an in-process store otherwise.
func NewRevocationStore(ctx context.Context, cfg config.Config) (RevocationStore, error) {
	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		logrus.Info("REDIS_ADDR not set, session revocations are kept in memory")
		return NewMemoryRevocationStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     10,
		MinIdleConns: 2,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logrus.WithField("addr", addr).Info("Redis connected")
	return NewRedisRevocationStore(client), nil
}

// RedisRevocationStore stores revoked IDs as expiring Redis keys.
type RedisRevocationStore struct {
	client *redis.Client
}

// NewRedisRevocationStore wraps an existing client.
func NewRedisRevocationStore(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, id string, until time.Time) error {
	if id == "" {
		return nil
	}
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKeyPrefix+id, 1, ttl).Err()
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	n, err := s.client.Exists(ctx, revokedKeyPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryRevocationStore keeps revoked IDs in process memory.
type MemoryRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryRevocationStore) Revoke(_ context.Context, id string, until time.Time) error {
	if id == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, exp := range s.revoked {
		if !exp.After(now) {
			delete(s.revoked, key)
		}
	}
	if until.After(now) {
		s.revoked[id] = until
	}
	return nil
}

func (s *MemoryRevocationStore) IsRevoked(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.revoked[id]
	if !ok {
		return false, nil
	}
	return exp.After(s.now()), nil
}
