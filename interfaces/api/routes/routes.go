package routes

import (
	"github.com/gofiber/fiber/v2"

	"tasktrack-api/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app)

	SetupUserRoutes(app, h)
	SetupTaskRoutes(app, h)
}
