package ports

import "tasklist/internal/core/domain/entities"

// SnapshotCache holds at most one task-list snapshot per user. Expired and
// missing entries are indistinguishable to callers; both are misses.
type SnapshotCache interface {
	Get(userID string) ([]entities.Task, bool)
	Put(userID string, snapshot []entities.Task)
	Invalidate(userID string)
	Stats() CacheStats
}

type CacheStats struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Entries int    `json:"entries"`
}
