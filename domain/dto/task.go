package dto

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,min=5,max=60"`
	Description string `json:"description" validate:"required,min=10,max=255"`
}

// UpdateTaskRequest leaves every field but id optional; empty strings mean
// "unchanged" since no valid value is shorter than the minimum length.
type UpdateTaskRequest struct {
	ID          uint   `json:"id" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=TODO DONE"`
	Title       string `json:"title" validate:"omitempty,min=5,max=60"`
	Description string `json:"description" validate:"omitempty,min=10,max=255"`
}

type DeleteTaskRequest struct {
	ID uint `json:"id" validate:"required"`
}

type TaskResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type TaskListResponse struct {
	Message string         `json:"message"`
	Tasks   []TaskResponse `json:"tasks"`
}
