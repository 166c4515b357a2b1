package postgres

import (
	"context"
	"errors"
	"time"

	"tasklist/internal/core/domain/entities"
	"tasklist/internal/core/domain/exceptions"
	"tasklist/internal/infrastructure/db"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TaskRepository struct {
	db  db.Querier
	log *zap.Logger
}

func NewTaskRepository(db db.Querier, log *zap.Logger) *TaskRepository {
	if db == nil {
		log.Fatal("database querier is nil")
	}
	if log == nil {
		panic("logger is nil")
	}
	return &TaskRepository{
		db:  db,
		log: log,
	}
}

func (r *TaskRepository) Insert(ctx context.Context, task *entities.Task) error {
	query := `INSERT INTO tasks (id, user_id, title, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING seq`

	if err := r.db.QueryRow(
		ctx,
		query,
		task.ID,
		task.UserID,
		task.Title,
		task.Status,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.Seq); err != nil {
		r.log.Error("failed to insert task", zap.Error(err))
		return err
	}
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entities.Task, error) {
	query := `SELECT id, user_id, title, status, created_at, updated_at, seq
		FROM tasks WHERE id = $1`

	task := entities.Task{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.Seq,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, exceptions.ErrTaskNotFound
		}
		r.log.Error("failed to get task", zap.Error(err))
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, userID string) ([]entities.Task, error) {
	query := `SELECT id, user_id, title, status, created_at, updated_at, seq
		FROM tasks WHERE user_id = $1
		ORDER BY created_at DESC, seq ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to list tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		task := entities.Task{}
		if err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Title,
			&task.Status,
			&task.CreatedAt,
			&task.UpdatedAt,
			&task.Seq,
		); err != nil {
			r.log.Error("failed to scan task row", zap.Error(err))
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("failed to iterate task rows", zap.Error(err))
		return nil, err
	}

	return tasks, nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, userID, id string, status entities.TaskStatus, updatedAt time.Time) error {
	query := `UPDATE tasks SET status = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4`

	tag, err := r.db.Exec(ctx, query, status, updatedAt, id, userID)
	if err != nil {
		r.log.Error("failed to update task status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return exceptions.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) UpdateTitle(ctx context.Context, userID, id string, title string, updatedAt time.Time) error {
	query := `UPDATE tasks SET title = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4`

	tag, err := r.db.Exec(ctx, query, title, updatedAt, id, userID)
	if err != nil {
		r.log.Error("failed to update task title", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return exceptions.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("failed to delete task", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return exceptions.ErrTaskNotFound
	}
	return nil
}
