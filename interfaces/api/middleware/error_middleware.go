package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tasktrack-api/pkg/apperror"
	"tasktrack-api/pkg/logger"
	"tasktrack-api/pkg/utils"
)

// ErrorHandler is the single translation boundary: every failure category
// becomes an HTTP status and a {message} or {message, issues} body.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var validationErr *apperror.ValidationError
		if errors.As(err, &validationErr) {
			return utils.ValidationErrorResponse(c, validationErr.Message, validationErr.Issues)
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return utils.ErrorResponse(c, appErr.StatusCode, appErr.Message)
		}

		// Token-verification failures surface as 401 here. The original
		// behavior mapped them to 500.
		if errors.Is(err, utils.ErrInvalidToken) || errors.Is(err, utils.ErrExpiredToken) {
			return utils.UnauthorizedResponse(c, "invalid authorization")
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return utils.ErrorResponse(c, fiberErr.Code, fiberErr.Message)
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error", "error", err)

		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
