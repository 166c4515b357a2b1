package entities

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Title     string     `json:"title"`
	Status    TaskStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Seq is the insertion order assigned by the store. It only breaks
	// created_at ties so listings have a total order; never exposed.
	Seq int64 `json:"-"`
}

func NewTask(id, userID, title string, createdAt time.Time) *Task {
	return &Task{
		ID:        id,
		UserID:    userID,
		Title:     strings.TrimSpace(title),
		Status:    TaskStatusTodo,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// TaskList is the result of a list operation, tagged with its origin.
type TaskList struct {
	Cached bool   `json:"cached"`
	Tasks  []Task `json:"tasks"`
}
