package repository

import (
	"context"
	"errors"

	"taskboard/internal/domain"
)

// ErrTaskNotFound is returned when no task matches the id/owner pair.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository exposes persistence operations for Task records.
// Every read and mutation is scoped by the owning user id.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) error
	Get(ctx context.Context, id, userID string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id, userID string) error
}
