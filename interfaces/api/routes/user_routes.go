package routes

import (
	"github.com/gofiber/fiber/v2"

	"tasktrack-api/interfaces/api/handlers"
	"tasktrack-api/interfaces/api/middleware"
)

func SetupUserRoutes(app *fiber.App, h *handlers.Handlers) {
	users := app.Group("/users")
	users.Get("/login", h.UserHandler.Login)
	users.Post("/create", h.UserHandler.Register)
	users.Delete("/delete/:id", middleware.Protected(h.JWTSecret), h.UserHandler.DeleteUser)
}
