package tenant

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ResolverCache caches domain → tenant lookups. Domain resolution runs once
// per inbound request, so cache hits must not touch the database. Entries are
// invalidated on status transitions.
type ResolverCache interface {
	Get(ctx context.Context, domain string) (*Tenant, bool)
	Set(ctx context.Context, domain string, t *Tenant)
	Invalidate(ctx context.Context, domain string)
}

const resolverKeyPrefix = "tenant:domain:"

type redisResolverCache struct {
	rdb redis.UniversalClient
	ttl time.Duration
	log *zap.Logger
}

// NewRedisResolverCache creates a ResolverCache backed by Redis so every
// instance of the platform shares one resolution cache. Cache failures are
// logged and treated as misses; they never fail a request.
func NewRedisResolverCache(rdb redis.UniversalClient, ttl time.Duration, log *zap.Logger) ResolverCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &redisResolverCache{rdb: rdb, ttl: ttl, log: log}
}

func (c *redisResolverCache) Get(ctx context.Context, domain string) (*Tenant, bool) {
	data, err := c.rdb.Get(ctx, resolverKeyPrefix+domain).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("resolver cache read failed", zap.String("domain", domain), zap.Error(err))
		}
		return nil, false
	}
	var t Tenant
	if err := json.Unmarshal(data, &t); err != nil {
		c.log.Warn("resolver cache entry corrupt", zap.String("domain", domain), zap.Error(err))
		return nil, false
	}
	return &t, true
}

func (c *redisResolverCache) Set(ctx context.Context, domain string, t *Tenant) {
	data, err := json.Marshal(t)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, resolverKeyPrefix+domain, data, c.ttl).Err(); err != nil {
		c.log.Warn("resolver cache write failed", zap.String("domain", domain), zap.Error(err))
	}
}

func (c *redisResolverCache) Invalidate(ctx context.Context, domain string) {
	if err := c.rdb.Del(ctx, resolverKeyPrefix+domain).Err(); err != nil {
		c.log.Warn("resolver cache invalidate failed", zap.String("domain", domain), zap.Error(err))
	}
}

type memoryEntry struct {
	value     *Tenant
	expiresAt time.Time
}

type memoryResolverCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

// NewMemoryResolverCache creates a per-process ResolverCache with TTL, for
// deployments without Redis and for tests.
func NewMemoryResolverCache(ttl time.Duration) ResolverCache {
	return &memoryResolverCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (c *memoryResolverCache) Get(_ context.Context, domain string) (*Tenant, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, found := c.entries[domain]
	if !found || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

func (c *memoryResolverCache) Set(_ context.Context, domain string, t *Tenant) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[domain] = memoryEntry{
		value:     t,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *memoryResolverCache) Invalidate(_ context.Context, domain string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, domain)
}
