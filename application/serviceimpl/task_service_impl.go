package serviceimpl

import (
	"context"
	"time"

	"tasktrack-api/domain/dto"
	"tasktrack-api/domain/models"
	"tasktrack-api/domain/repositories"
	"tasktrack-api/domain/services"
	"tasktrack-api/pkg/apperror"
	"tasktrack-api/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, userID uint) ([]*models.Task, error) {
	tasks, err := s.taskRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", userID, "error", err)
		return nil, apperror.Internal("failed to list tasks")
	}
	return tasks, nil
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uint, req *dto.CreateTaskRequest) error {
	// The owning user row must still exist; a valid token for a deleted
	// account is not enough.
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		logger.WarnContext(ctx, "User not found for task creation", "user_id", userID)
		return apperror.Unauthorized("invalid user")
	}

	task := &models.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatusTodo,
		CreatedAt:   time.Now().Format(time.DateTime),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return apperror.Internal("failed to create task")
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", userID)

	return nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, userID uint, req *dto.UpdateTaskRequest) error {
	fields := map[string]any{
		"updated_at": time.Now().Format(time.DateTime),
	}
	if req.Status != "" {
		fields["status"] = req.Status
	}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}

	affected, err := s.taskRepo.UpdateOwned(ctx, req.ID, userID, fields)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", req.ID, "user_id", userID, "error", err)
		return apperror.Internal("failed to update task")
	}

	if affected == 0 {
		logger.WarnContext(ctx, "Task not found for update", "task_id", req.ID, "user_id", userID)
		return apperror.NotFound("task not found")
	}

	logger.InfoContext(ctx, "Task updated", "task_id", req.ID, "user_id", userID)

	return nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uint) error {
	affected, err := s.taskRepo.DeleteOwned(ctx, taskID, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "user_id", userID, "error", err)
		return apperror.Internal("failed to delete task")
	}

	if affected == 0 {
		logger.WarnContext(ctx, "Task not found for deletion", "task_id", taskID, "user_id", userID)
		return apperror.NotFound("task not found")
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", userID)

	return nil
}
