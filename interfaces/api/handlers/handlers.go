package handlers

import (
	"tasktrack-api/domain/services"
)

// Services contains everything the handlers need.
type Services struct {
	UserService services.UserService
	TaskService services.TaskService
	JWTSecret   string
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	UserHandler *UserHandler
	TaskHandler *TaskHandler
	JWTSecret   string
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		UserHandler: NewUserHandler(services.UserService),
		TaskHandler: NewTaskHandler(services.TaskService),
		JWTSecret:   services.JWTSecret,
	}
}
