package sqlite

import (
	"context"

	"gorm.io/gorm"

	"tasktrack-api/domain/models"
	"tasktrack-api/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByUserID(ctx context.Context, userID uint) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&tasks).Error
	return tasks, err
}

// UpdateOwned filters by id and owner in the same statement, so a hit on
// another user's task counts as zero rows.
func (r *TaskRepositoryImpl) UpdateOwned(ctx context.Context, id, userID uint, fields map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *TaskRepositoryImpl) DeleteOwned(ctx context.Context, id, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Task{})
	return result.RowsAffected, result.Error
}
