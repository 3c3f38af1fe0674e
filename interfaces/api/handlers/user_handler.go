package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"tasktrack-api/domain/dto"
	"tasktrack-api/domain/services"
	"tasktrack-api/pkg/apperror"
	"tasktrack-api/pkg/logger"
	"tasktrack-api/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return apperror.BadRequest("invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		issues := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "issues", issues)
		return apperror.NewValidationError(issues)
	}

	logger.InfoContext(ctx, "Registration attempt", "email", req.Email)

	if err := h.userService.Register(ctx, &req); err != nil {
		return err
	}

	return utils.SuccessMessage(c, "user created")
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return apperror.BadRequest("invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		issues := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "issues", issues)
		return apperror.NewValidationError(issues)
	}

	logger.InfoContext(ctx, "Login attempt", "email", req.Email)

	token, err := h.userService.Login(ctx, &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.LoginResponse{
		Message: "user found",
		Token:   token,
	})
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return apperror.Unauthorized("invalid authorization")
	}

	idParam := c.Params("id")
	if idParam == "" {
		return apperror.BadRequest("user id is required")
	}

	targetID, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		logger.WarnContext(ctx, "Invalid user id", "id", idParam)
		return apperror.BadRequest("user id is invalid")
	}

	logger.InfoContext(ctx, "User deletion attempt", "user_id", targetID)

	if err := h.userService.DeleteUser(ctx, user.ID, uint(targetID)); err != nil {
		return err
	}

	return utils.SuccessMessage(c, "user deleted")
}
