package usecase

import (
	authdomain "todolist-api/internal/auth/domain"
	"todolist-api/internal/task/domain"
)

// Caller is the authenticated identity task operations run as.
type Caller struct {
	UserID authdomain.UserID
	Role   string
}

// IsAdmin reports whether the caller holds the administrator role
func (c Caller) IsAdmin() bool {
	return c.Role == authdomain.RoleAdmin
}

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// ListTasks returns the caller's tasks, or every task for an admin
	ListTasks(caller Caller) ([]*domain.Task, error)

	// CreateTask creates a new task owned by the caller
	CreateTask(caller Caller, description string, isCompleted bool) (*domain.Task, error)

	// UpdateTask replaces the description and completion flag of a task
	UpdateTask(caller Caller, id uint, description string, isCompleted bool) error

	// ToggleTaskStatus flips a task's completion flag
	ToggleTaskStatus(caller Caller, id uint) error

	// DeleteTask removes a task
	DeleteTask(caller Caller, id uint) error
}
