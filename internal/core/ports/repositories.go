package ports

import (
	"context"
	"time"

	"tasklist/internal/core/domain/entities"
)

type TaskRepository interface {
	Insert(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, id string) (*entities.Task, error)
	// ListByOwner returns the owner's tasks ordered by created_at descending,
	// with insertion order breaking ties.
	ListByOwner(ctx context.Context, userID string) ([]entities.Task, error)
	UpdateStatus(ctx context.Context, userID, id string, status entities.TaskStatus, updatedAt time.Time) error
	UpdateTitle(ctx context.Context, userID, id string, title string, updatedAt time.Time) error
	Delete(ctx context.Context, userID, id string) error
}

type UserRepository interface {
	Insert(ctx context.Context, user *entities.User) error
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

type AuditRepository interface {
	Insert(ctx context.Context, record *entities.AuditRecord) error
	// ListRecent returns the user's records, most recent first, capped at limit.
	ListRecent(ctx context.Context, userID string, limit int) ([]entities.AuditRecord, error)
}
