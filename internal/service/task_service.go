package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// ErrTaskNotFound is returned when a task id does not exist or belongs to a
// different user.
var ErrTaskNotFound = errors.New("task not found")

// TaskUpdate carries the mutable task fields; nil pointers leave the stored
// value untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// TaskService coordinates task operations, always scoped to the owner.
type TaskService interface {
	Create(ctx context.Context, userID, title, description string, status domain.TaskStatus) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)
	Update(ctx context.Context, id, userID string, patch TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id, userID string) error
}

type taskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, userID, title, description string, status domain.TaskStatus) (*domain.Task, error) {
	if title == "" {
		return nil, ErrMissingFields
	}
	if status == "" {
		status = domain.TaskStatusPending
	}
	if !domain.ValidTaskStatus(status) {
		return nil, ErrMissingFields
	}

	task := &domain.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      status,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

func (s *taskService) Update(ctx context.Context, id, userID string, patch TaskUpdate) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		if !domain.ValidTaskStatus(*patch.Status) {
			return nil, ErrMissingFields
		}
		task.Status = *patch.Status
	}
	if task.Title == "" {
		return nil, ErrMissingFields
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id, userID string) error {
	if err := s.tasks.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	return nil
}
