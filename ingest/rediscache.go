package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pajaro5/roadgraph/config"
	"github.com/pajaro5/roadgraph/graphstore"
	"github.com/pajaro5/roadgraph/payload/roadseg"
)

// ErrKeyNotFound names a Redis cache miss as distinct from "edge does not
// exist in the store". CachedLookup.GetEdge does not return it: a miss
// falls through to the store, so callers see only the store's answer.
var ErrKeyNotFound = errors.New("ingest: cache key not found")

// cachedSegment is the wire shape stored in Redis for a single edge
// lookup result.
type cachedSegment struct {
	Found bool          `json:"found"`
	Seg   roadseg.Segment `json:"segment"`
}

// CachedLookup wraps a *graphstore.Store with a Redis-backed read cache in
// front of GetEdge. The store itself enforces no internal synchronization
// (single-writer, see graphstore's package doc), so CachedLookup holds its
// own RWMutex around the pair (store, generation): readers take the read
// lock to reach the current store, and Swap takes the write lock to
// atomically replace it (for example after a background Compress/Trim
// pass rebuilds a fresh store) and bump generation so any cached entries
// keyed to the old store's vertex ids are treated as stale.
type CachedLookup struct {
	mu         sync.RWMutex
	store      *graphstore.Store
	generation uint64
	rdb        *redis.Client
	ttl        time.Duration
}

// NewCachedLookup builds a CachedLookup over store using a Redis client
// configured per cfg. It pings Redis once to fail fast on
// misconfiguration.
func NewCachedLookup(ctx context.Context, store *graphstore.Store, cfg config.CacheConfig) (*CachedLookup, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	ttl := cfg.DefaultTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &CachedLookup{store: store, rdb: rdb, ttl: ttl}, nil
}

// Close releases the Redis client.
func (c *CachedLookup) Close() error {
	return c.rdb.Close()
}

// Swap atomically replaces the store CachedLookup serves, bumping its
// generation so keys cached against the previous store are never served
// back to callers. Intended for hot-swapping in a freshly Compress/Trim'd
// store without pausing readers.
func (c *CachedLookup) Swap(store *graphstore.Store) {
	c.mu.Lock()
	c.store = store
	c.generation++
	c.mu.Unlock()
}

func cacheKey(generation uint64, u, w graphstore.VertexID) string {
	return fmt.Sprintf("roadgraph:edge:%d:%d:%d", generation, u, w)
}

// GetEdge returns the payload of edge {u, w}, serving from Redis when
// present and falling through to the store (populating Redis) on a miss.
func (c *CachedLookup) GetEdge(ctx context.Context, u, w graphstore.VertexID) (graphstore.Payload, bool, error) {
	c.mu.RLock()
	store, gen := c.store, c.generation
	c.mu.RUnlock()

	key := cacheKey(gen, u, w)

	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var cs cachedSegment
		if jsonErr := json.Unmarshal(raw, &cs); jsonErr == nil {
			if !cs.Found {
				return nil, false, nil
			}
			return cs.Seg, true, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	p, ok, err := store.GetEdge(u, w)
	if err != nil {
		return nil, false, err
	}

	var cs cachedSegment
	if ok {
		seg, isSeg := p.(roadseg.Segment)
		if !isSeg {
			// Non-roadseg payloads aren't cacheable in this wire format;
			// skip the write-through and return the result directly.
			return p, true, nil
		}
		cs = cachedSegment{Found: true, Seg: seg}
	} else {
		cs = cachedSegment{Found: false}
	}

	if raw, marshalErr := json.Marshal(cs); marshalErr == nil {
		c.rdb.Set(ctx, key, raw, c.ttl)
	}

	return p, ok, nil
}

// AddEdge writes through to the store under the write lock and
// invalidates any cached entry for the pair.
func (c *CachedLookup) AddEdge(ctx context.Context, u, w graphstore.VertexID, payload graphstore.Payload, cmp graphstore.Comparator) error {
	c.mu.Lock()
	store, gen := c.store, c.generation
	err := store.AddEdge(u, w, payload, cmp)
	c.mu.Unlock()
	if err != nil {
		return err
	}

	c.rdb.Del(ctx, cacheKey(gen, u, w), cacheKey(gen, w, u))
	return nil
}

// RemoveEdge writes through to the store under the write lock and
// invalidates any cached entry for the pair.
func (c *CachedLookup) RemoveEdge(ctx context.Context, u, w graphstore.VertexID) error {
	c.mu.Lock()
	store, gen := c.store, c.generation
	err := store.RemoveEdge(u, w)
	c.mu.Unlock()
	if err != nil {
		return err
	}

	c.rdb.Del(ctx, cacheKey(gen, u, w), cacheKey(gen, w, u))
	return nil
}
