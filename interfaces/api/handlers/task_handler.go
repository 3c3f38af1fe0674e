package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tasktrack-api/domain/dto"
	"tasktrack-api/domain/services"
	"tasktrack-api/pkg/apperror"
	"tasktrack-api/pkg/logger"
	"tasktrack-api/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return apperror.Unauthorized("invalid authorization")
	}

	tasks, err := h.taskService.ListTasks(ctx, user.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.TaskListResponse{
		Message: "tasks found",
		Tasks:   dto.TasksToTaskResponses(tasks),
	})
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return apperror.Unauthorized("invalid authorization")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return apperror.BadRequest("invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		issues := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "issues", issues)
		return apperror.NewValidationError(issues)
	}

	logger.InfoContext(ctx, "Task creation attempt", "user_id", user.ID, "title", req.Title)

	if err := h.taskService.CreateTask(ctx, user.ID, &req); err != nil {
		return err
	}

	return utils.SuccessMessage(c, "task created")
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return apperror.Unauthorized("invalid authorization")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return apperror.BadRequest("invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		issues := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "issues", issues)
		return apperror.NewValidationError(issues)
	}

	logger.InfoContext(ctx, "Task update attempt", "task_id", req.ID, "user_id", user.ID)

	if err := h.taskService.UpdateTask(ctx, user.ID, &req); err != nil {
		return err
	}

	return utils.SuccessMessage(c, "task updated")
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return apperror.Unauthorized("invalid authorization")
	}

	var req dto.DeleteTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return apperror.BadRequest("invalid request body")
	}

	if req.ID == 0 {
		logger.WarnContext(ctx, "Task id missing from delete request", "user_id", user.ID)
		return apperror.BadRequest("task id is required")
	}

	logger.InfoContext(ctx, "Task deletion attempt", "task_id", req.ID, "user_id", user.ID)

	if err := h.taskService.DeleteTask(ctx, user.ID, req.ID); err != nil {
		return err
	}

	return utils.SuccessMessage(c, "task deleted")
}
