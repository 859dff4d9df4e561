package domain

import (
	"errors"
	"time"

	authdomain "todolist-api/internal/auth/domain"
)

// MaxDescriptionLength bounds a task description.
const MaxDescriptionLength = 100

// Task represents a to-do item owned by a single user
type Task struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	Description string            `json:"description" gorm:"size:100;not null"`
	IsCompleted bool              `json:"isCompleted"`
	CreatedAt   time.Time         `json:"createdAt"`
	UserID      authdomain.UserID `json:"userId" gorm:"index;not null"`
}

var (
	// ErrTaskNotFound covers both an absent task and a task owned by someone
	// else: callers must not be able to tell whether a foreign task exists.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNoTasks is returned when a listing matches nothing.
	ErrNoTasks = errors.New("no tasks found")

	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionTooLong  = errors.New("description cannot exceed 100 characters")
)
