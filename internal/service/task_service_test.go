package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

type fakeTaskRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{byID: map[string]*domain.Task{}}
}

func (f *fakeTaskRepo) Init(ctx context.Context) error { return nil }

func (f *fakeTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *task
	f.byID[task.ID] = &clone
	return nil
}

func (f *fakeTaskRepo) Get(ctx context.Context, id, userID string) (*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.byID[id]
	if !ok || task.UserID != userID {
		return nil, repository.ErrTaskNotFound
	}
	clone := *task
	return &clone, nil
}

func (f *fakeTaskRepo) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var tasks []domain.Task
	for _, task := range f.byID {
		if task.UserID == userID {
			tasks = append(tasks, *task)
		}
	}
	return tasks, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.byID[task.ID]
	if !ok || stored.UserID != task.UserID {
		return repository.ErrTaskNotFound
	}
	clone := *task
	f.byID[task.ID] = &clone
	return nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.byID[id]
	if !ok || task.UserID != userID {
		return repository.ErrTaskNotFound
	}
	delete(f.byID, id)
	return nil
}

func TestTaskService_CreateDefaultsToPending(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())

	task, err := svc.Create(context.Background(), "u1", "write report", "", "")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
	assert.NotEmpty(t, task.ID)
}

func TestTaskService_CreateRequiresTitle(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())

	_, err := svc.Create(context.Background(), "u1", "", "desc", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestTaskService_CreateRejectsUnknownStatus(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())

	_, err := svc.Create(context.Background(), "u1", "write report", "", "archived")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestTaskService_UpdateScopedToOwner(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)

	task, err := svc.Create(context.Background(), "u1", "write report", "", "")
	require.NoError(t, err)

	title := "stolen"
	_, err = svc.Update(context.Background(), task.ID, "u2", TaskUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	status := domain.TaskStatusCompleted
	updated, err := svc.Update(context.Background(), task.ID, "u1", TaskUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, updated.Status)
	assert.Equal(t, "write report", updated.Title)
}

func TestTaskService_DeleteScopedToOwner(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())

	task, err := svc.Create(context.Background(), "u1", "write report", "", "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(context.Background(), task.ID, "u2"), ErrTaskNotFound)
	require.NoError(t, svc.Delete(context.Background(), task.ID, "u1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), task.ID, "u1"), ErrTaskNotFound)
}

func TestTaskService_ListByUser(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())

	_, err := svc.Create(context.Background(), "u1", "one", "", "")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "u1", "two", "", "")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "u2", "other", "", "")
	require.NoError(t, err)

	tasks, err := svc.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}
