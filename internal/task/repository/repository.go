package repository

import (
	authdomain "todolist-api/internal/auth/domain"
	"todolist-api/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID, (nil, nil) when absent
	FindByID(id uint) (*domain.Task, error)

	// FindAll returns every task regardless of owner
	FindAll() ([]*domain.Task, error)

	// FindByUserID returns all tasks owned by the given user
	FindByUserID(userID authdomain.UserID) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// ToggleCompletion flips the completion flag in a single transaction
	// and returns the updated task
	ToggleCompletion(id uint) (*domain.Task, error)

	// Delete deletes a task by ID
	Delete(id uint) error
}
