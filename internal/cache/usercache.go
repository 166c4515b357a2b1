package cache

import (
	"sync"
	"time"

	"tasklist/internal/core/domain/entities"
	"tasklist/internal/core/ports"
)

// DefaultTTL bounds worst-case staleness for any unmodeled mutation path.
const DefaultTTL = 30 * time.Second

// UserCache keeps at most one task-list snapshot per user, valid for TTL
// after capture. Expiration is lazy: stale entries are ignored on Get and
// only removed when superseded or invalidated. A single mutex guards the
// map; entries are small per-user snapshots, so contention is negligible
// and per-key locking is not worth its bookkeeping.
type UserCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time

	hits   uint64
	misses uint64
}

type entry struct {
	capturedAt time.Time
	snapshot   []entities.Task
}

func New(ttl time.Duration) *UserCache {
	return NewWithClock(ttl, time.Now)
}

// NewWithClock injects the clock used for capture and freshness checks.
func NewWithClock(ttl time.Duration, now func() time.Time) *UserCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &UserCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     now,
	}
}

// Get returns a copy of the user's snapshot iff an entry exists and is
// still fresh. Missing and expired entries are both misses.
func (c *UserCache) Get(userID string) ([]entities.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[userID]
	if !ok || c.now().Sub(e.capturedAt) >= c.ttl {
		c.misses++
		return nil, false
	}

	c.hits++
	return cloneSnapshot(e.snapshot), true
}

// Put unconditionally replaces the user's entry with a copy of snapshot
// captured now. There is no merge; a populate always carries whole state.
func (c *UserCache) Put(userID string, snapshot []entities.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[userID] = entry{
		capturedAt: c.now(),
		snapshot:   cloneSnapshot(snapshot),
	}
}

// Invalidate removes the user's entry if present. Idempotent.
func (c *UserCache) Invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, userID)
}

// Stats reports cumulative hit/miss counters and the current entry count.
// The count includes expired entries that have not been superseded yet.
func (c *UserCache) Stats() ports.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return ports.CacheStats{
		Hits:    c.hits,
		Misses:  c.misses,
		Entries: len(c.entries),
	}
}

// Callers must not observe later mutations of a stored snapshot, and the
// store must not observe mutations by callers. Task values carry no
// reference fields, so copying the slice is a deep enough copy.
func cloneSnapshot(tasks []entities.Task) []entities.Task {
	if tasks == nil {
		return []entities.Task{}
	}
	out := make([]entities.Task, len(tasks))
	copy(out, tasks)
	return out
}
