package repository

import (
	"context"
	"errors"
	"time"

	"taskboard/internal/domain"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert or update would violate
	// email uniqueness.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines persistence operations for User entities.
//
// SetResetOtp and UpdatePassword each touch both OTP columns in a single
// statement so the set-together/clear-together invariant holds even under
// concurrent requests.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	SetResetOtp(ctx context.Context, id, otpHash string, expiresAt time.Time) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateProfile(ctx context.Context, id, name, email string) error
}
