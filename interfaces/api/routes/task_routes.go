package routes

import (
	"github.com/gofiber/fiber/v2"

	"tasktrack-api/interfaces/api/handlers"
	"tasktrack-api/interfaces/api/middleware"
)

func SetupTaskRoutes(app *fiber.App, h *handlers.Handlers) {
	tasks := app.Group("/tasks")
	tasks.Use(middleware.Protected(h.JWTSecret))
	tasks.Get("/list", h.TaskHandler.ListTasks)
	tasks.Post("/create", h.TaskHandler.CreateTask)
	tasks.Patch("/edit", h.TaskHandler.UpdateTask)
	tasks.Delete("/delete", h.TaskHandler.DeleteTask)
}
