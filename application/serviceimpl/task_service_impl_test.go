package serviceimpl

import (
	"context"
	"net/http"
	"testing"

	"tasktrack-api/domain/dto"
	"tasktrack-api/domain/models"
)

func newTaskServiceWithFakes(t *testing.T) (*fakeTaskRepo, *fakeUserRepo, *TaskServiceImpl) {
	t.Helper()

	taskRepo := newFakeTaskRepo()
	userRepo := newFakeUserRepo()
	svc := NewTaskService(taskRepo, userRepo).(*TaskServiceImpl)
	return taskRepo, userRepo, svc
}

func mustCreateUser(t *testing.T, repo *fakeUserRepo, email string) uint {
	t.Helper()

	user := &models.User{Email: email, Password: "hash"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to prepare user: %v", err)
	}
	return user.ID
}

func mustCreateTask(t *testing.T, svc *TaskServiceImpl, userID uint) uint {
	t.Helper()

	err := svc.CreateTask(context.Background(), userID, &dto.CreateTaskRequest{
		Title:       "write report",
		Description: "quarterly report for the team",
	})
	if err != nil {
		t.Fatalf("failed to prepare task: %v", err)
	}
	return svc.taskRepo.(*fakeTaskRepo).nextID - 1
}

func TestCreateTask_SetsDefaults(t *testing.T) {
	t.Parallel()

	taskRepo, userRepo, svc := newTaskServiceWithFakes(t)
	userID := mustCreateUser(t, userRepo, "a@example.com")

	taskID := mustCreateTask(t, svc, userID)

	task := taskRepo.tasks[taskID]
	if task.Status != models.TaskStatusTodo {
		t.Fatalf("expected status TODO, got %q", task.Status)
	}
	if task.CreatedAt == "" {
		t.Fatal("created_at must be set at creation")
	}
	if task.UpdatedAt != "" {
		t.Fatal("updated_at must stay empty until first edit")
	}
}

func TestCreateTask_UserRowGone(t *testing.T) {
	t.Parallel()

	_, _, svc := newTaskServiceWithFakes(t)

	err := svc.CreateTask(context.Background(), 99, &dto.CreateTaskRequest{
		Title:       "write report",
		Description: "quarterly report for the team",
	})
	assertAppError(t, err, http.StatusUnauthorized)
}

func TestListTasks_OnlyOwnersTasks(t *testing.T) {
	t.Parallel()

	_, userRepo, svc := newTaskServiceWithFakes(t)
	userA := mustCreateUser(t, userRepo, "a@example.com")
	userB := mustCreateUser(t, userRepo, "b@example.com")

	mustCreateTask(t, svc, userA)
	mustCreateTask(t, svc, userB)

	tasks, err := svc.ListTasks(context.Background(), userA)
	if err != nil {
		t.Fatalf("ListTasks returned error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task for owner, got %d", len(tasks))
	}
	if tasks[0].UserID != userA {
		t.Fatalf("expected task owned by %d, got %d", userA, tasks[0].UserID)
	}
}

func TestUpdateTask_PartialEditKeepsOtherFields(t *testing.T) {
	t.Parallel()

	taskRepo, userRepo, svc := newTaskServiceWithFakes(t)
	userID := mustCreateUser(t, userRepo, "a@example.com")
	taskID := mustCreateTask(t, svc, userID)

	err := svc.UpdateTask(context.Background(), userID, &dto.UpdateTaskRequest{
		ID:     taskID,
		Status: models.TaskStatusDone,
	})
	if err != nil {
		t.Fatalf("UpdateTask returned error: %v", err)
	}

	if _, ok := taskRepo.lastUpdate["title"]; ok {
		t.Fatal("title must not be touched on a status-only edit")
	}
	if _, ok := taskRepo.lastUpdate["description"]; ok {
		t.Fatal("description must not be touched on a status-only edit")
	}
	if _, ok := taskRepo.lastUpdate["updated_at"]; !ok {
		t.Fatal("updated_at must be set on every edit")
	}

	task := taskRepo.tasks[taskID]
	if task.Status != models.TaskStatusDone {
		t.Fatalf("expected status DONE, got %q", task.Status)
	}
	if task.Title != "write report" {
		t.Fatalf("title changed unexpectedly: %q", task.Title)
	}
	if task.UpdatedAt == "" {
		t.Fatal("updated_at not set")
	}
}

func TestUpdateTask_OtherUsersTask(t *testing.T) {
	t.Parallel()

	taskRepo, userRepo, svc := newTaskServiceWithFakes(t)
	userA := mustCreateUser(t, userRepo, "a@example.com")
	userB := mustCreateUser(t, userRepo, "b@example.com")
	taskID := mustCreateTask(t, svc, userA)

	err := svc.UpdateTask(context.Background(), userB, &dto.UpdateTaskRequest{
		ID:     taskID,
		Status: models.TaskStatusDone,
	})
	assertAppError(t, err, http.StatusNotFound)

	// Row must be untouched.
	if taskRepo.tasks[taskID].Status != models.TaskStatusTodo {
		t.Fatal("another user's edit must not modify the row")
	}
}

func TestUpdateTask_UnknownID(t *testing.T) {
	t.Parallel()

	_, userRepo, svc := newTaskServiceWithFakes(t)
	userID := mustCreateUser(t, userRepo, "a@example.com")

	err := svc.UpdateTask(context.Background(), userID, &dto.UpdateTaskRequest{
		ID:     42,
		Status: models.TaskStatusDone,
	})
	assertAppError(t, err, http.StatusNotFound)
}

func TestDeleteTask_OtherUsersTask(t *testing.T) {
	t.Parallel()

	taskRepo, userRepo, svc := newTaskServiceWithFakes(t)
	userA := mustCreateUser(t, userRepo, "a@example.com")
	userB := mustCreateUser(t, userRepo, "b@example.com")
	taskID := mustCreateTask(t, svc, userA)

	err := svc.DeleteTask(context.Background(), userB, taskID)
	assertAppError(t, err, http.StatusNotFound)

	if _, ok := taskRepo.tasks[taskID]; !ok {
		t.Fatal("another user's delete must not remove the row")
	}
}

func TestDeleteTask_Success(t *testing.T) {
	t.Parallel()

	taskRepo, userRepo, svc := newTaskServiceWithFakes(t)
	userID := mustCreateUser(t, userRepo, "a@example.com")
	taskID := mustCreateTask(t, svc, userID)

	if err := svc.DeleteTask(context.Background(), userID, taskID); err != nil {
		t.Fatalf("DeleteTask returned error: %v", err)
	}
	if _, ok := taskRepo.tasks[taskID]; ok {
		t.Fatal("task row should be gone")
	}
}
