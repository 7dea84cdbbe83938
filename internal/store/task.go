package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/tasklist-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
//
// Every owner-scoped operation filters by task ID and owner ID inside a
// single SQL predicate. Callers never fetch a task by ID and compare the
// owner themselves; the authorization check stays inside the data boundary.
type TaskStore interface {
	// Create saves a new task and fills in the store-assigned ID and
	// CreatedAt. Completed defaults to false.
	Create(ctx context.Context, task *domain.Task) error

	// ListByOwner returns the owner's tasks in creation (primary key)
	// order, skipping the first skip rows and returning at most limit.
	// An out-of-range skip yields an empty slice, not an error.
	ListByOwner(ctx context.Context, ownerID int64, skip, limit int) ([]domain.Task, error)

	// UpdateCompleted sets the completed flag on the task with the given
	// ID if and only if it is owned by ownerID, returning the updated
	// task. Returns ErrTaskNotFound if no owned task matches.
	UpdateCompleted(ctx context.Context, taskID, ownerID int64, completed bool) (*domain.Task, error)

	// Delete removes the task with the given ID if and only if it is
	// owned by ownerID. Returns ErrTaskNotFound if no owned task matches.
	Delete(ctx context.Context, taskID, ownerID int64) error

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) TaskStore
}
