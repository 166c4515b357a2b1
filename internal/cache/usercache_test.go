package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"tasklist/internal/core/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func snapshot(titles ...string) []entities.Task {
	tasks := make([]entities.Task, 0, len(titles))
	for i, title := range titles {
		tasks = append(tasks, entities.Task{
			ID:     fmt.Sprintf("task-%d", i),
			Title:  title,
			Status: entities.TaskStatusTodo,
		})
	}
	return tasks
}

func TestGetMissesWhenEmpty(t *testing.T) {
	c := New(DefaultTTL)

	got, ok := c.Get("alice")
	assert.False(t, ok)
	assert.Nil(t, got)

	stats := c.Stats()
	assert.Equal(t, uint64(0), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 0, stats.Entries)
}

func TestPutThenGetHits(t *testing.T) {
	c := New(DefaultTTL)
	c.Put("alice", snapshot("buy milk"))

	got, ok := c.Get("alice")
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "buy milk", got[0].Title)

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(0), stats.Misses)
	assert.Equal(t, 1, stats.Entries)
}

func TestTTLBoundaries(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(30*time.Second, clock.Now)

	c.Put("alice", snapshot("buy milk"))

	clock.Advance(29 * time.Second)
	got, ok := c.Get("alice")
	require.True(t, ok, "entry must still be fresh 29s after capture")
	assert.Equal(t, "buy milk", got[0].Title)

	clock.Advance(2 * time.Second)
	_, ok = c.Get("alice")
	assert.False(t, ok, "entry must be stale 31s after capture")

	// Repopulating restarts the TTL window.
	c.Put("alice", snapshot("buy milk"))
	_, ok = c.Get("alice")
	assert.True(t, ok)
}

func TestExpiredEntryIsIndistinguishableFromMissing(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(time.Second, clock.Now)

	c.Put("alice", snapshot("a"))
	clock.Advance(2 * time.Second)

	gotExpired, okExpired := c.Get("alice")
	gotMissing, okMissing := c.Get("bob")
	assert.Equal(t, okMissing, okExpired)
	assert.Equal(t, gotMissing, gotExpired)
}

func TestPutOverwritesWholeState(t *testing.T) {
	c := New(DefaultTTL)
	c.Put("alice", snapshot("a", "b"))
	c.Put("alice", snapshot("c"))

	got, ok := c.Get("alice")
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].Title)
}

func TestInvalidateIsIdempotent(t *testing.T) {
	c := New(DefaultTTL)

	// Invalidating a user with no entry must be a no-op.
	c.Invalidate("alice")

	c.Put("alice", snapshot("a"))
	c.Invalidate("alice")
	c.Invalidate("alice")

	_, ok := c.Get("alice")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Stats().Entries)
}

func TestEntriesAreIsolatedPerUser(t *testing.T) {
	c := New(DefaultTTL)
	c.Put("alice", snapshot("alice task"))
	c.Put("bob", snapshot("bob task"))

	c.Invalidate("alice")

	_, ok := c.Get("alice")
	assert.False(t, ok)

	got, ok := c.Get("bob")
	require.True(t, ok)
	assert.Equal(t, "bob task", got[0].Title)
}

func TestSnapshotsAreCopied(t *testing.T) {
	c := New(DefaultTTL)

	original := snapshot("original")
	c.Put("alice", original)
	original[0].Title = "mutated by caller"

	got, ok := c.Get("alice")
	require.True(t, ok)
	assert.Equal(t, "original", got[0].Title, "Put must copy the snapshot")

	got[0].Title = "mutated by reader"
	again, ok := c.Get("alice")
	require.True(t, ok)
	assert.Equal(t, "original", again[0].Title, "Get must return a copy")
}

func TestEmptySnapshotIsAHit(t *testing.T) {
	c := New(DefaultTTL)
	c.Put("alice", nil)

	got, ok := c.Get("alice")
	require.True(t, ok, "an empty task list is valid cached state")
	assert.Empty(t, got)
}

func TestConcurrentAccess(t *testing.T) {
	c := New(DefaultTTL)
	users := []string{"alice", "bob", "carol"}

	const workers = 8
	const iterations = 201 // divisible by 3, so each worker does 67 gets

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				user := users[(n+j)%len(users)]
				switch j % 3 {
				case 0:
					c.Put(user, snapshot("t"))
				case 1:
					c.Get(user)
				default:
					c.Invalidate(user)
				}
			}
		}(i)
	}
	wg.Wait()

	stats := c.Stats()
	assert.Equal(t, uint64(workers*iterations/3), stats.Hits+stats.Misses)
}
