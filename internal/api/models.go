package api

import (
	"time"

	"github.com/phrazzld/tasklist-api/internal/domain"
)

// Request/response structures. These are deliberately decoupled from the
// domain entities: the wire shape is part of the external interface and
// does not move when the internal representation does.

// SignUpRequest defines the payload for the sign-up endpoint.
type SignUpRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// SignInRequest defines the payload for the sign-in endpoint.
type SignInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// TokenResponse defines the successful response for both auth endpoints.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateTaskRequest defines the payload for the create-task endpoint.
type CreateTaskRequest struct {
	Title string `json:"title" validate:"required,min=1"`
}

// UpdateTaskRequest defines the payload for the update-task endpoint.
// Completed is a pointer so a missing field fails validation instead of
// silently defaulting to false.
type UpdateTaskRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// TaskResponse defines the wire shape of a task.
type TaskResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	OwnerID   int64     `json:"owner_id"`
}

// MessageResponse defines a confirmation response with a single message.
type MessageResponse struct {
	Message string `json:"message"`
}

// taskToResponse converts a domain task to its wire shape.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt,
		OwnerID:   task.OwnerID,
	}
}
