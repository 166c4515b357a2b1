package ports

import (
	"context"

	"tasklist/internal/core/domain/entities"
)

type TaskUseCases interface {
	CreateTask(ctx context.Context, userID, title string) (*entities.Task, error)
	ListTasks(ctx context.Context, userID string) (*entities.TaskList, error)
	UpdateStatus(ctx context.Context, userID, taskID string, status entities.TaskStatus) (*entities.Task, error)
	EditTitle(ctx context.Context, userID, taskID, title string) (*entities.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
	RecentActivity(ctx context.Context, userID string) ([]entities.AuditRecord, error)
	CacheStats() CacheStats
}

type AuthUseCases interface {
	Register(ctx context.Context, email, password string) (*entities.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}
