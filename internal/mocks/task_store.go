package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn          func(ctx context.Context, task *domain.Task) error
	ListByOwnerFn     func(ctx context.Context, ownerID int64, skip, limit int) ([]domain.Task, error)
	UpdateCompletedFn func(ctx context.Context, taskID, ownerID int64, completed bool) (*domain.Task, error)
	DeleteFn          func(ctx context.Context, taskID, ownerID int64) error

	// Data for the default in-memory implementation, in insertion order
	Tasks  []domain.Task
	nextID int64
}

// Ensure MockTaskStore implements store.TaskStore.
var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a new mock store with initialized defaults.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{nextID: 1}
}

// Create implements the TaskStore interface.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	task.ID = m.nextID
	m.nextID++
	task.CreatedAt = time.Now().UTC()
	m.Tasks = append(m.Tasks, *task)
	return nil
}

// ListByOwner implements the TaskStore interface.
func (m *MockTaskStore) ListByOwner(
	ctx context.Context,
	ownerID int64,
	skip, limit int,
) ([]domain.Task, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID, skip, limit)
	}

	owned := make([]domain.Task, 0)
	for _, task := range m.Tasks {
		if task.OwnerID == ownerID {
			owned = append(owned, task)
		}
	}

	if skip >= len(owned) {
		return []domain.Task{}, nil
	}
	owned = owned[skip:]
	if limit < len(owned) {
		owned = owned[:limit]
	}
	return owned, nil
}

// UpdateCompleted implements the TaskStore interface.
func (m *MockTaskStore) UpdateCompleted(
	ctx context.Context,
	taskID, ownerID int64,
	completed bool,
) (*domain.Task, error) {
	if m.UpdateCompletedFn != nil {
		return m.UpdateCompletedFn(ctx, taskID, ownerID, completed)
	}

	for i := range m.Tasks {
		if m.Tasks[i].ID == taskID && m.Tasks[i].OwnerID == ownerID {
			m.Tasks[i].Completed = completed
			task := m.Tasks[i]
			return &task, nil
		}
	}
	return nil, store.ErrTaskNotFound
}

// Delete implements the TaskStore interface.
func (m *MockTaskStore) Delete(ctx context.Context, taskID, ownerID int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, taskID, ownerID)
	}

	for i := range m.Tasks {
		if m.Tasks[i].ID == taskID && m.Tasks[i].OwnerID == ownerID {
			m.Tasks = append(m.Tasks[:i], m.Tasks[i+1:]...)
			return nil
		}
	}
	return store.ErrTaskNotFound
}

// WithTx implements the TaskStore interface. The mock has no transaction
// semantics, so it returns itself.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}
