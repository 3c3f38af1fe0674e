package repositories

import (
	"context"

	"tasktrack-api/domain/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// DeleteWithTasks removes the user's tasks and the user row in a single
	// transaction, so a failure leaves neither orphaned.
	DeleteWithTasks(ctx context.Context, id uint) error
}
