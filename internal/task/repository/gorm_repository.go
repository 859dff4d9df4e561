package repository

import (
	"errors"
	"time"

	authdomain "todolist-api/internal/auth/domain"
	"todolist-api/internal/task/domain"

	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	task.CreatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(id uint) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindAll() ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Order("created_at ASC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) FindByUserID(userID authdomain.UserID) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	return r.db.Save(task).Error
}

// ToggleCompletion reads and flips the flag inside one transaction so two
// concurrent toggles serialize instead of both writing the same value.
func (r *gormTaskRepository) ToggleCompletion(id uint) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&task).Error; err != nil {
			return err
		}
		task.IsCompleted = !task.IsCompleted
		return tx.Model(&task).Update("is_completed", task.IsCompleted).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Task{}, "id = ?", id).Error
}
