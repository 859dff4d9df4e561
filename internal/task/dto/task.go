package dto

// TaskRequest is the body for both task creation and full update
type TaskRequest struct {
	Description string `json:"description" binding:"required,max=100"`
	IsCompleted bool   `json:"isCompleted"`
}
