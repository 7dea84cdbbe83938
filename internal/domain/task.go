package domain

import (
	"errors"
	"time"
)

// Task validation errors.
var (
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrEmptyOwnerID = errors.New("owner ID cannot be empty")
)

// Task is a unit of work owned by exactly one user. Only the Completed
// flag is mutable after creation, and only through the owner.
type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	OwnerID   int64     `json:"owner_id"`
}

// NewTask creates a Task ready for persistence. Completed defaults to
// false; the store assigns ID and CreatedAt on insert.
func NewTask(title string, ownerID int64) (*Task, error) {
	task := &Task{
		Title:   title,
		OwnerID: ownerID,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if t.OwnerID <= 0 {
		return ErrEmptyOwnerID
	}
	return nil
}
