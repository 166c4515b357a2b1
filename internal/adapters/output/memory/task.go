package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"tasklist/internal/core/domain/entities"
	"tasklist/internal/core/domain/exceptions"
)

// TaskRepository is a mutex-guarded in-memory store with the same contract
// as its postgres counterpart, used by the memory storage driver and tests.
type TaskRepository struct {
	mu    sync.Mutex
	tasks map[string]entities.Task
	seq   int64
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		tasks: make(map[string]entities.Task),
	}
}

func (r *TaskRepository) Insert(_ context.Context, task *entities.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	task.Seq = r.seq
	r.tasks[task.ID] = *task
	return nil
}

func (r *TaskRepository) GetByID(_ context.Context, id string) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, exceptions.ErrTaskNotFound
	}
	return &task, nil
}

func (r *TaskRepository) ListByOwner(_ context.Context, userID string) ([]entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := make([]entities.Task, 0)
	for _, task := range r.tasks {
		if task.UserID == userID {
			tasks = append(tasks, task)
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		}
		return tasks[i].Seq < tasks[j].Seq
	})
	return tasks, nil
}

func (r *TaskRepository) UpdateStatus(_ context.Context, userID, id string, status entities.TaskStatus, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return exceptions.ErrTaskNotFound
	}
	task.Status = status
	task.UpdatedAt = updatedAt
	r.tasks[id] = task
	return nil
}

func (r *TaskRepository) UpdateTitle(_ context.Context, userID, id string, title string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return exceptions.ErrTaskNotFound
	}
	task.Title = title
	task.UpdatedAt = updatedAt
	r.tasks[id] = task
	return nil
}

func (r *TaskRepository) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return exceptions.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}
