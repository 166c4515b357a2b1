package postgres

import (
	"context"

	"tasklist/internal/core/domain/entities"
	"tasklist/internal/infrastructure/db"

	"go.uber.org/zap"
)

type AuditRepository struct {
	db  db.Querier
	log *zap.Logger
}

func NewAuditRepository(db db.Querier, log *zap.Logger) *AuditRepository {
	if db == nil {
		log.Fatal("database querier is nil")
	}
	if log == nil {
		panic("logger is nil")
	}
	return &AuditRepository{
		db:  db,
		log: log,
	}
}

func (r *AuditRepository) Insert(ctx context.Context, record *entities.AuditRecord) error {
	query := `INSERT INTO audit_records (id, user_id, method, path, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	body := any(record.Body)
	if len(record.Body) == 0 {
		body = nil
	}

	if _, err := r.db.Exec(
		ctx,
		query,
		record.ID,
		record.UserID,
		record.Method,
		record.Path,
		body,
		record.CreatedAt,
	); err != nil {
		r.log.Error("failed to insert audit record", zap.Error(err))
		return err
	}
	return nil
}

func (r *AuditRepository) ListRecent(ctx context.Context, userID string, limit int) ([]entities.AuditRecord, error) {
	query := `SELECT id, user_id, method, path, body, created_at
		FROM audit_records WHERE user_id = $1
		ORDER BY seq DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		r.log.Error("failed to list audit records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	records := make([]entities.AuditRecord, 0, limit)
	for rows.Next() {
		record := entities.AuditRecord{}
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Method,
			&record.Path,
			&record.Body,
			&record.CreatedAt,
		); err != nil {
			r.log.Error("failed to scan audit row", zap.Error(err))
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("failed to iterate audit rows", zap.Error(err))
		return nil, err
	}

	return records, nil
}
