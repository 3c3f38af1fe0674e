package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ========== Response Structures ==========

// Wire contract: success bodies are {message, ...}, failures are {message}
// or {message, issues} for validation.

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponseBody struct {
	Message string `json:"message"`
	Issues  any    `json:"issues,omitempty"`
}

// ========== Success Responses ==========

func SuccessMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: message})
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorResponseBody{Message: message})
}

func ValidationErrorResponse(c *fiber.Ctx, message string, issues any) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponseBody{
		Message: message,
		Issues:  issues,
	})
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message)
}

func UnauthorizedResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponse(c, fiber.StatusUnauthorized, message)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(c, fiber.StatusNotFound, message)
}

func InternalServerErrorResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, message)
}
