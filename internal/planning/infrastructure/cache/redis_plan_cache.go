// Package cache provides a read-through cache for optimized plans.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/felixgeelhaar/cadence/internal/planning/application/queries"
	"github.com/felixgeelhaar/cadence/pkg/observability"
)

const latestPlanKey = "cadence:plan:latest"

// Client is the subset of redis.Client commands the plan cache uses.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisPlanCache caches plan read models in Redis. Misses and Redis
// failures both fall through to the caller; a cold cache is never an error.
type RedisPlanCache struct {
	client  Client
	ttl     time.Duration
	logger  *slog.Logger
	metrics observability.Metrics
}

// NewRedisPlanCache creates a new plan cache.
func NewRedisPlanCache(client Client, ttl time.Duration, logger *slog.Logger, metrics observability.Metrics) *RedisPlanCache {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &RedisPlanCache{
		client:  client,
		ttl:     ttl,
		logger:  logger,
		metrics: metrics,
	}
}

func planKey(id uuid.UUID) string {
	return fmt.Sprintf("cadence:plan:%s", id)
}

// Get returns the cached view for a plan ID, or false on a miss.
func (c *RedisPlanCache) Get(ctx context.Context, id uuid.UUID) (*queries.PlanView, bool) {
	return c.get(ctx, planKey(id))
}

// GetLatest returns the cached view of the most recent plan.
func (c *RedisPlanCache) GetLatest(ctx context.Context) (*queries.PlanView, bool) {
	return c.get(ctx, latestPlanKey)
}

func (c *RedisPlanCache) get(ctx context.Context, key string) (*queries.PlanView, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("plan cache read failed", "key", key, "error", err)
		}
		c.metrics.Counter(observability.MetricCacheMisses, 1)
		return nil, false
	}

	var view queries.PlanView
	if err := json.Unmarshal(data, &view); err != nil {
		c.logger.Warn("plan cache entry corrupt, dropping", "key", key, "error", err)
		c.client.Del(ctx, key)
		c.metrics.Counter(observability.MetricCacheMisses, 1)
		return nil, false
	}

	c.metrics.Counter(observability.MetricCacheHits, 1)
	return &view, true
}

// Put stores a plan view under its ID key only. A view fetched by ID may
// be historical, so it must never become the cached latest.
func (c *RedisPlanCache) Put(ctx context.Context, view *queries.PlanView) {
	c.put(ctx, view, planKey(view.ID))
}

// PutLatest stores a plan view known to be the most recent one under both
// its ID key and the latest key.
func (c *RedisPlanCache) PutLatest(ctx context.Context, view *queries.PlanView) {
	c.put(ctx, view, planKey(view.ID), latestPlanKey)
}

func (c *RedisPlanCache) put(ctx context.Context, view *queries.PlanView, keys ...string) {
	data, err := json.Marshal(view)
	if err != nil {
		c.logger.Warn("failed to marshal plan view for cache", "plan_id", view.ID, "error", err)
		return
	}

	for _, key := range keys {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("plan cache write failed", "key", key, "error", err)
		}
	}
}

// Invalidate drops the cached view for a plan and the latest key.
func (c *RedisPlanCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if err := c.client.Del(ctx, planKey(id), latestPlanKey).Err(); err != nil {
		c.logger.Warn("plan cache invalidation failed", "plan_id", id, "error", err)
	}
}
