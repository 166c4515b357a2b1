package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"tasklist/internal/core/domain/entities"
	"tasklist/internal/core/domain/exceptions"
	"tasklist/internal/core/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recentActivityLimit = 50

// TaskService orchestrates identity-scoped task operations around the
// per-user cache. Every mutation follows the same ordering: store commit,
// then cache invalidation, then audit. Invalidation before commit would
// let a concurrent list repopulate the cache with pre-mutation state.
type TaskService struct {
	tasks    ports.TaskRepository
	cache    ports.SnapshotCache
	audit    ports.AuditSink
	auditLog ports.AuditRepository
	now      func() time.Time
	log      *zap.Logger
}

func NewTaskService(
	tasks ports.TaskRepository,
	cache ports.SnapshotCache,
	audit ports.AuditSink,
	auditLog ports.AuditRepository,
	log *zap.Logger,
) (*TaskService, error) {
	if tasks == nil {
		return nil, errors.New("task repository is nil")
	}
	if cache == nil {
		return nil, errors.New("snapshot cache is nil")
	}
	if audit == nil {
		return nil, errors.New("audit sink is nil")
	}
	if auditLog == nil {
		return nil, errors.New("audit repository is nil")
	}
	if log == nil {
		return nil, errors.New("logger is nil")
	}
	return &TaskService{
		tasks:    tasks,
		cache:    cache,
		audit:    audit,
		auditLog: auditLog,
		now:      time.Now,
		log:      log,
	}, nil
}

func (s *TaskService) CreateTask(ctx context.Context, userID, title string) (*entities.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, exceptions.ErrEmptyTitle
	}

	task := entities.NewTask(uuid.NewString(), userID, title, s.now())
	if err := s.tasks.Insert(ctx, task); err != nil {
		s.log.Warn("usecase: create task failed", zap.Error(err))
		return nil, err
	}

	s.cache.Invalidate(userID)
	s.audit.Record(ctx, http.MethodPost, "/api/tasks", userID, map[string]any{"title": title})

	s.log.Info("usecase: create task done", zap.String("user_id", userID), zap.String("task_id", task.ID))
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, userID string) (*entities.TaskList, error) {
	if snapshot, ok := s.cache.Get(userID); ok {
		// Cached reads are auditable too, distinguished by the path marker.
		s.audit.Record(ctx, http.MethodGet, "/api/tasks (cached)", userID, nil)
		s.log.Debug("usecase: list tasks served from cache", zap.String("user_id", userID), zap.Int("tasks", len(snapshot)))
		return &entities.TaskList{Cached: true, Tasks: snapshot}, nil
	}

	tasks, err := s.tasks.ListByOwner(ctx, userID)
	if err != nil {
		s.log.Warn("usecase: list tasks failed", zap.Error(err))
		return nil, err
	}

	s.cache.Put(userID, tasks)
	s.audit.Record(ctx, http.MethodGet, "/api/tasks", userID, nil)

	s.log.Debug("usecase: list tasks done", zap.String("user_id", userID), zap.Int("tasks", len(tasks)))
	return &entities.TaskList{Cached: false, Tasks: tasks}, nil
}

func (s *TaskService) UpdateStatus(ctx context.Context, userID, taskID string, status entities.TaskStatus) (*entities.Task, error) {
	if !status.IsValid() {
		return nil, exceptions.ErrInvalidStatus
	}

	task, err := s.getOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	updatedAt := s.now()
	if err := s.tasks.UpdateStatus(ctx, userID, taskID, status, updatedAt); err != nil {
		s.log.Warn("usecase: update status failed", zap.Error(err))
		return nil, err
	}

	s.cache.Invalidate(userID)
	s.audit.Record(ctx, http.MethodPatch, "/api/tasks/"+taskID+"/status", userID, map[string]any{"status": status})

	task.Status = status
	task.UpdatedAt = updatedAt
	s.log.Info("usecase: update status done", zap.String("user_id", userID), zap.String("task_id", taskID), zap.String("status", string(status)))
	return task, nil
}

func (s *TaskService) EditTitle(ctx context.Context, userID, taskID, title string) (*entities.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, exceptions.ErrEmptyTitle
	}

	task, err := s.getOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	updatedAt := s.now()
	if err := s.tasks.UpdateTitle(ctx, userID, taskID, title, updatedAt); err != nil {
		s.log.Warn("usecase: edit title failed", zap.Error(err))
		return nil, err
	}

	s.cache.Invalidate(userID)
	s.audit.Record(ctx, http.MethodPatch, "/api/tasks/"+taskID+"/title", userID, map[string]any{"title": title})

	task.Title = title
	task.UpdatedAt = updatedAt
	s.log.Info("usecase: edit title done", zap.String("user_id", userID), zap.String("task_id", taskID))
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	if _, err := s.getOwned(ctx, userID, taskID); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, userID, taskID); err != nil {
		if !errors.Is(err, exceptions.ErrTaskNotFound) {
			s.log.Warn("usecase: delete task failed", zap.Error(err))
		}
		return err
	}

	s.cache.Invalidate(userID)
	s.audit.Record(ctx, http.MethodDelete, "/api/tasks/"+taskID, userID, nil)

	s.log.Info("usecase: delete task done", zap.String("user_id", userID), zap.String("task_id", taskID))
	return nil
}

func (s *TaskService) RecentActivity(ctx context.Context, userID string) ([]entities.AuditRecord, error) {
	records, err := s.auditLog.ListRecent(ctx, userID, recentActivityLimit)
	if err != nil {
		s.log.Warn("usecase: recent activity failed", zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, http.MethodGet, "/api/activity", userID, nil)
	return records, nil
}

func (s *TaskService) CacheStats() ports.CacheStats {
	return s.cache.Stats()
}

// getOwned resolves a task and verifies ownership before any mutation.
// A task owned by someone else reports the same error as an absent one,
// so callers cannot probe for other users' task ids.
func (s *TaskService) getOwned(ctx context.Context, userID, taskID string) (*entities.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, exceptions.ErrTaskNotFound
	}
	return task, nil
}
