package sitegen

import (
	"context"
	"sync"
	"time"
)

// SnapshotCache holds the most recently loaded Snapshot for the preview
// server. With a zero TTL every call reloads, so edits show up on the next
// request.
type SnapshotCache struct {
	mu      sync.RWMutex
	snap    *Snapshot
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewSnapshotCache creates a SnapshotCache backed by the given Store.
func NewSnapshotCache(s *Store, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{store: s, ttl: ttl}
}

func (c *SnapshotCache) valid() bool {
	return c.snap != nil && c.ttl > 0 && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}

// Get returns a fresh-enough snapshot. It tries a read lock first and only
// takes the write lock when a reload is needed.
func (c *SnapshotCache) Get(ctx context.Context) (*Snapshot, error) {
	c.mu.RLock()
	if c.valid() {
		snap := c.snap
		c.mu.RUnlock()
		return snap, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.snap, nil
	}
	snap, err := LoadSnapshot(ctx, c.store)
	if err != nil {
		return nil, err
	}
	c.snap = snap
	c.fetched = time.Now()
	return snap, nil
}
