package usecase

import (
	"todolist-api/internal/task/domain"
	"todolist-api/internal/task/repository"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) ListTasks(caller Caller) ([]*domain.Task, error) {
	var tasks []*domain.Task
	var err error

	if caller.IsAdmin() {
		tasks, err = u.taskRepo.FindAll()
	} else {
		tasks, err = u.taskRepo.FindByUserID(caller.UserID)
	}
	if err != nil {
		return nil, err
	}

	if len(tasks) == 0 {
		return nil, domain.ErrNoTasks
	}

	return tasks, nil
}

func (u *taskUsecase) CreateTask(caller Caller, description string, isCompleted bool) (*domain.Task, error) {
	if description == "" {
		return nil, domain.ErrDescriptionRequired
	}
	if len(description) > domain.MaxDescriptionLength {
		return nil, domain.ErrDescriptionTooLong
	}

	task := &domain.Task{
		Description: description,
		IsCompleted: isCompleted,
		UserID:      caller.UserID,
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) UpdateTask(caller Caller, id uint, description string, isCompleted bool) error {
	if description == "" {
		return domain.ErrDescriptionRequired
	}
	if len(description) > domain.MaxDescriptionLength {
		return domain.ErrDescriptionTooLong
	}

	task, err := u.authorize(caller, id)
	if err != nil {
		return err
	}

	task.Description = description
	task.IsCompleted = isCompleted
	return u.taskRepo.Update(task)
}

func (u *taskUsecase) ToggleTaskStatus(caller Caller, id uint) error {
	if _, err := u.authorize(caller, id); err != nil {
		return err
	}

	task, err := u.taskRepo.ToggleCompletion(id)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (u *taskUsecase) DeleteTask(caller Caller, id uint) error {
	if _, err := u.authorize(caller, id); err != nil {
		return err
	}

	return u.taskRepo.Delete(id)
}

// authorize loads a task and checks the caller may mutate it. An absent task
// and a foreign task produce the same error so callers cannot probe for
// tasks they don't own.
func (u *taskUsecase) authorize(caller Caller, id uint) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil || (task.UserID != caller.UserID && !caller.IsAdmin()) {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}
