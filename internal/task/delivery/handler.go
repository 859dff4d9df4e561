package delivery

import (
	"errors"
	"net/http"
	"strconv"

	authdelivery "todolist-api/internal/auth/delivery"
	authdomain "todolist-api/internal/auth/domain"
	"todolist-api/internal/task/domain"
	taskdto "todolist-api/internal/task/dto"
	"todolist-api/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// GetTasks returns the caller's tasks, or all tasks for an admin
// GET /api/tasks
func (h *TaskHandler) GetTasks(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	tasks, err := h.taskUsecase.ListTasks(caller)
	if err != nil {
		if errors.Is(err, domain.ErrNoTasks) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no tasks found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask creates a new task owned by the caller
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req taskdto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(caller, req.Description, req.IsCompleted)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask replaces a task's description and completion flag
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	var req taskdto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.taskUsecase.UpdateTask(caller, id, req.Description, req.IsCompleted); err != nil {
		respondTaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleTaskStatus flips a task's completion flag
// PATCH /api/tasks/:id/toggle-status
func (h *TaskHandler) ToggleTaskStatus(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := h.taskUsecase.ToggleTaskStatus(caller, id); err != nil {
		respondTaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteTask removes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := h.taskUsecase.DeleteTask(caller, id); err != nil {
		respondTaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func callerFromContext(c *gin.Context) (usecase.Caller, bool) {
	v, exists := c.Get(authdelivery.ContextUserKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return usecase.Caller{}, false
	}

	user, ok := v.(*authdomain.User)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return usecase.Caller{}, false
	}

	return usecase.Caller{UserID: user.ID, Role: user.Role}, true
}

func taskIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return 0, false
	}
	return uint(id), true
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
	case errors.Is(err, domain.ErrDescriptionRequired), errors.Is(err, domain.ErrDescriptionTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
