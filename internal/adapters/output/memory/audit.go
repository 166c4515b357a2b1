package memory

import (
	"context"
	"sync"

	"tasklist/internal/core/domain/entities"
)

type AuditRepository struct {
	mu      sync.Mutex
	records map[string][]entities.AuditRecord
}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{
		records: make(map[string][]entities.AuditRecord),
	}
}

func (r *AuditRepository) Insert(_ context.Context, record *entities.AuditRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[record.UserID] = append(r.records[record.UserID], *record)
	return nil
}

func (r *AuditRepository) ListRecent(_ context.Context, userID string, limit int) ([]entities.AuditRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.records[userID]
	out := make([]entities.AuditRecord, 0, limit)
	for i := len(stored) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, stored[i])
	}
	return out, nil
}
