// Package cache provides a bounded, short-TTL memoization layer for venue
// reads. One decision cycle issues a handful of redundant lookups (best bid,
// best ask, mid, depth and position may all key off the same snapshot); the
// cache collapses those into one venue call each while staying short enough to
// track a near-real-time market.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-maker/internal/logger"
	"github.com/rxtech-lab/argo-maker/internal/types"
	"go.uber.org/zap"
)

// Tag identifies the entity type a cached value belongs to. Entries are keyed
// by (tag, key, aux) so different lookups over the same market snapshot never
// collide.
type Tag string

const (
	TagBestAskPrice       Tag = "best_ask_price"
	TagBestBidPrice       Tag = "best_bid_price"
	TagBestAskSize        Tag = "best_ask_size"
	TagBestBidSize        Tag = "best_bid_size"
	TagMidPrice           Tag = "mid_price"
	TagLastPrice          Tag = "last_price"
	TagAskPrices          Tag = "ask_prices"
	TagBidPrices          Tag = "bid_prices"
	TagInstrumentPosition Tag = "instrument_position"
	TagFundingPosition    Tag = "funding_position"
	TagCommissionRate     Tag = "commission_rate"
	TagOrder              Tag = "order"
	TagActiveOrders       Tag = "active_orders"
	TagExecutions         Tag = "executions"
)

const (
	// DefaultTTL straddles one decision cycle.
	DefaultTTL = 3 * time.Second
	// DefaultMaxEntries bounds resident entries per tag.
	DefaultMaxEntries = 64
)

type entryKey struct {
	tag Tag
	key types.Key
	aux string
}

// entry holds one cached value. The per-entry mutex doubles as the load latch:
// concurrent callers for the same key block on it instead of re-invoking the
// loader.
type entry struct {
	mu         sync.Mutex
	loaded     bool
	value      any
	expiresAt  time.Time
	insertedAt time.Time
}

// Cache memoizes venue reads per (tag, key, aux) with a fixed TTL and a
// per-tag resident entry bound. Safe for concurrent use from multiple
// instrument cycles sharing one venue.
type Cache struct {
	mu         sync.Mutex
	entries    map[entryKey]*entry
	ttl        time.Duration
	maxEntries int
	logger     *logger.Logger
	now        func() time.Time
}

// NewCache creates a Cache with the given TTL and per-tag capacity. Zero or
// negative arguments fall back to the defaults.
func NewCache(ttl time.Duration, maxEntries int, log *logger.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &Cache{
		entries:    make(map[entryKey]*entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		logger:     log,
		now:        time.Now,
	}
}

// Single fetches a single cached value, invoking loader at most once per live
// entry. A loader failure is logged, returned as None and not cached, so the
// next call retries.
func Single[T any](ctx context.Context, c *Cache, tag Tag, key types.Key, aux string, loader func(context.Context) (optional.Option[T], error)) optional.Option[T] {
	e := c.entryFor(tag, key, aux)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.loaded && c.now().Before(e.expiresAt) {
		if value, ok := e.value.(optional.Option[T]); ok {
			return value
		}
	}

	value, err := loader(ctx)
	if err != nil {
		c.logger.Warn("cache loader failed",
			zap.String("tag", string(tag)),
			zap.String("site", key.Site),
			zap.String("instrument", key.Instrument),
			zap.Error(err),
		)

		return optional.None[T]()
	}

	e.loaded = true
	e.value = value
	e.expiresAt = c.now().Add(c.ttl)

	return value
}

// List fetches a cached collection, invoking loader at most once per live
// entry. A loader failure is logged, returned as an empty collection and not
// cached.
func List[T any](ctx context.Context, c *Cache, tag Tag, key types.Key, aux string, loader func(context.Context) ([]T, error)) []T {
	e := c.entryFor(tag, key, aux)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.loaded && c.now().Before(e.expiresAt) {
		if value, ok := e.value.([]T); ok {
			return value
		}
	}

	value, err := loader(ctx)
	if err != nil {
		c.logger.Warn("cache loader failed",
			zap.String("tag", string(tag)),
			zap.String("site", key.Site),
			zap.String("instrument", key.Instrument),
			zap.Error(err),
		)

		return nil
	}

	e.loaded = true
	e.value = value
	e.expiresAt = c.now().Add(c.ttl)

	return value
}

// Clear drops all resident entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[entryKey]*entry)
}

// Len returns the number of resident entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// entryFor returns the entry for the given lookup, lazily creating it and
// evicting per-tag capacity overflow.
func (c *Cache) entryFor(tag Tag, key types.Key, aux string) *entry {
	k := entryKey{tag: tag, key: key, aux: aux}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[k]; ok {
		return e
	}

	c.evictLocked(tag)

	e := &entry{insertedAt: c.now()}
	c.entries[k] = e

	return e
}

// evictLocked removes expired entries for the tag, then the oldest resident
// entries until the tag is below capacity. Caller holds c.mu.
func (c *Cache) evictLocked(tag Tag) {
	now := c.now()
	count := 0

	for k, e := range c.entries {
		if k.tag != tag {
			continue
		}

		if e.loaded && now.After(e.expiresAt) {
			delete(c.entries, k)

			continue
		}

		count++
	}

	for count >= c.maxEntries {
		var (
			oldestKey entryKey
			oldest    *entry
		)

		for k, e := range c.entries {
			if k.tag != tag {
				continue
			}

			if oldest == nil || e.insertedAt.Before(oldest.insertedAt) {
				oldestKey = k
				oldest = e
			}
		}

		if oldest == nil {
			return
		}

		delete(c.entries, oldestKey)

		count--
	}
}
