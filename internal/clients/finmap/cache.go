package finmap

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/finmap-org/finmap-mcp/internal/common"
	"github.com/finmap-org/finmap-mcp/internal/interfaces"
	"github.com/finmap-org/finmap-mcp/internal/models"
)

// DefaultCacheSize bounds the number of snapshots kept in memory.
const DefaultCacheSize = 64

// cacheEntry pairs a fetched envelope with its retrieval time.
type cacheEntry struct {
	envelope  *models.SnapshotEnvelope
	fetchedAt time.Time
}

// CachingClient is a read-through LRU decorator over a MarketDataClient.
// Historical snapshots are immutable and cached indefinitely (until
// evicted); same-day snapshots expire after ttl because intraday files are
// republished during the session. Profile lookups pass through uncached.
type CachingClient struct {
	inner     interfaces.MarketDataClient
	snapshots *lru.Cache[string, cacheEntry]
	ttl       time.Duration
	logger    *common.Logger
	now       func() time.Time
}

// NewCachingClient wraps inner with an LRU snapshot cache of the given size.
func NewCachingClient(inner interfaces.MarketDataClient, size int, ttl time.Duration, logger *common.Logger) (*CachingClient, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &CachingClient{
		inner:     inner,
		snapshots: cache,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// GetSnapshot returns a cached envelope when fresh, fetching otherwise.
func (c *CachingClient) GetSnapshot(ctx context.Context, exchange models.Exchange, date string) (*models.SnapshotEnvelope, error) {
	key := string(exchange) + "|" + date

	if entry, ok := c.snapshots.Get(key); ok {
		if !c.isStale(date, entry.fetchedAt) {
			c.logger.Debug().Str("exchange", string(exchange)).Str("date", date).Msg("Snapshot cache hit")
			return entry.envelope, nil
		}
		c.snapshots.Remove(key)
	}

	envelope, err := c.inner.GetSnapshot(ctx, exchange, date)
	if err != nil {
		return nil, err
	}

	c.snapshots.Add(key, cacheEntry{envelope: envelope, fetchedAt: c.now()})
	return envelope, nil
}

// GetCompanyProfile passes through to the inner client.
func (c *CachingClient) GetCompanyProfile(ctx context.Context, exchange models.Exchange, ticker string) (map[string]any, error) {
	return c.inner.GetCompanyProfile(ctx, exchange, ticker)
}

// isStale reports whether a cached same-day snapshot has outlived the ttl.
// Past dates never go stale.
func (c *CachingClient) isStale(date string, fetchedAt time.Time) bool {
	today := c.now().Format("2006-01-02")
	if date != today {
		return false
	}
	return c.now().Sub(fetchedAt) > c.ttl
}
