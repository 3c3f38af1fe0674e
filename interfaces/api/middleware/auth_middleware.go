package middleware

import (
	"github.com/gofiber/fiber/v2"

	"tasktrack-api/pkg/apperror"
	"tasktrack-api/pkg/logger"
	"tasktrack-api/pkg/utils"
)

// Protected validates the bearer credential and binds the authenticated user
// to the request. The raw Authorization header value is the token.
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperror.BadRequest("authorization not found")
		}

		userCtx, err := utils.ValidateToken(authHeader, jwtSecret)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token validation failed", "error", err)
			return apperror.Unauthorized("invalid authorization")
		}

		c.Locals("user", userCtx)

		return c.Next()
	}
}
