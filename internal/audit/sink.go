package audit

import (
	"context"
	"encoding/json"
	"time"

	"tasklist/internal/core/domain/entities"
	"tasklist/internal/core/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sink appends audit records through an AuditRepository. It is strictly
// best-effort: a record that cannot be serialized is stored with a null
// body, and a record that cannot be stored is logged and dropped. The
// calling operation has already succeeded or failed on its own merits.
type Sink struct {
	records ports.AuditRepository
	now     func() time.Time
	log     *zap.Logger
}

func NewSink(records ports.AuditRepository, log *zap.Logger) *Sink {
	if records == nil {
		log.Fatal("audit repository is nil")
	}
	if log == nil {
		panic("logger is nil")
	}
	return &Sink{
		records: records,
		now:     time.Now,
		log:     log,
	}
}

func (s *Sink) Record(ctx context.Context, method, path, userID string, body any) {
	var snapshot json.RawMessage
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			s.log.Warn("audit: body snapshot dropped", zap.String("path", path), zap.Error(err))
		} else {
			snapshot = data
		}
	}

	record := &entities.AuditRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		Method:    method,
		Path:      path,
		Body:      snapshot,
		CreatedAt: s.now(),
	}

	// The record must be attempted even if the client went away after the
	// mutation committed.
	if err := s.records.Insert(context.WithoutCancel(ctx), record); err != nil {
		s.log.Warn("audit: record dropped",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}
