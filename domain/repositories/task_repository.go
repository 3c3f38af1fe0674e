package repositories

import (
	"context"

	"tasktrack-api/domain/models"
)

// Task mutations are keyed by (id, user_id) in one statement. A zero affected
// count means "not found or not yours" and the two are indistinguishable.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByUserID(ctx context.Context, userID uint) ([]*models.Task, error)
	UpdateOwned(ctx context.Context, id, userID uint, fields map[string]any) (int64, error)
	DeleteOwned(ctx context.Context, id, userID uint) (int64, error)
}
