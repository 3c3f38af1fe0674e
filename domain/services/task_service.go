package services

import (
	"context"

	"tasktrack-api/domain/dto"
	"tasktrack-api/domain/models"
)

type TaskService interface {
	ListTasks(ctx context.Context, userID uint) ([]*models.Task, error)
	CreateTask(ctx context.Context, userID uint, req *dto.CreateTaskRequest) error
	UpdateTask(ctx context.Context, userID uint, req *dto.UpdateTaskRequest) error
	DeleteTask(ctx context.Context, userID, taskID uint) error
}
