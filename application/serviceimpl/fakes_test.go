package serviceimpl

import (
	"context"

	"gorm.io/gorm"

	"tasktrack-api/domain/models"
)

// In-memory repository fakes. Not safe for concurrent use; each test builds
// its own instance.

type fakeUserRepo struct {
	users      map[uint]*models.User
	nextID     uint
	deletedIDs []uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) DeleteWithTasks(_ context.Context, id uint) error {
	delete(r.users, id)
	r.deletedIDs = append(r.deletedIDs, id)
	return nil
}

type fakeTaskRepo struct {
	tasks       map[uint]*models.Task
	nextID      uint
	lastUpdate  map[string]any
	updateCalls int
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uint]*models.Task), nextID: 1}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	task.ID = r.nextID
	r.nextID++
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) GetByUserID(_ context.Context, userID uint) ([]*models.Task, error) {
	var tasks []*models.Task
	for id := uint(1); id < r.nextID; id++ {
		task, ok := r.tasks[id]
		if !ok || task.UserID != userID {
			continue
		}
		copied := *task
		tasks = append(tasks, &copied)
	}
	return tasks, nil
}

func (r *fakeTaskRepo) UpdateOwned(_ context.Context, id, userID uint, fields map[string]any) (int64, error) {
	r.lastUpdate = fields
	r.updateCalls++

	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return 0, nil
	}

	if status, ok := fields["status"].(string); ok {
		task.Status = status
	}
	if title, ok := fields["title"].(string); ok {
		task.Title = title
	}
	if description, ok := fields["description"].(string); ok {
		task.Description = description
	}
	if updatedAt, ok := fields["updated_at"].(string); ok {
		task.UpdatedAt = updatedAt
	}
	return 1, nil
}

func (r *fakeTaskRepo) DeleteOwned(_ context.Context, id, userID uint) (int64, error) {
	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return 0, nil
	}
	delete(r.tasks, id)
	return 1, nil
}
