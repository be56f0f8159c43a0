package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/solagora/agentmarket/internal/domain"
)

const (
	pageTTL    = 30 * time.Second
	versionKey = "agents:version"
)

// CachedAgentStore layers a Redis page cache over another agent store.
// Listing pages are cached briefly under a version-stamped key; every
// registration bumps the version, which orphans stale pages instead of
// deleting them (they expire on their own).
type CachedAgentStore struct {
	inner domain.AgentStore
	rdb   *redis.Client
}

func NewCachedAgentStore(inner domain.AgentStore, rdb *redis.Client) *CachedAgentStore {
	return &CachedAgentStore{inner: inner, rdb: rdb}
}

func (s *CachedAgentStore) pageKey(ctx context.Context, page, limit int) string {
	ver, err := s.rdb.Get(ctx, versionKey).Int64()
	if err != nil {
		ver = 0
	}
	return fmt.Sprintf("agents:v%d:page:%d:limit:%d", ver, page, limit)
}

func (s *CachedAgentStore) Create(ctx context.Context, a *domain.Agent) error {
	if err := s.inner.Create(ctx, a); err != nil {
		return err
	}
	// Cache invalidation is best-effort; a failed bump only means one
	// TTL window of staleness.
	_ = s.rdb.Incr(ctx, versionKey).Err()
	return nil
}

func (s *CachedAgentStore) List(ctx context.Context, page, limit int) ([]domain.Agent, error) {
	key := s.pageKey(ctx, page, limit)

	if data, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
		var agents []domain.Agent
		if err := json.Unmarshal(data, &agents); err == nil {
			return agents, nil
		}
	}

	agents, err := s.inner.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(agents); err == nil {
		_ = s.rdb.Set(ctx, key, data, pageTTL).Err()
	}
	return agents, nil
}

func (s *CachedAgentStore) Count(ctx context.Context) (int64, error) {
	return s.inner.Count(ctx)
}
