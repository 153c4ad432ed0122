package service

import (
	"context"
	"errors"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// ErrEmailInUse is returned when a profile update targets an email owned by
// another account.
var ErrEmailInUse = errors.New("email already in use")

// UserService exposes profile reads and updates for authenticated users.
type UserService interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id, name, email string) (*domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id, name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, ErrMissingFields
	}

	// The email may belong to another account already.
	if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing.ID != id {
		return nil, ErrEmailInUse
	} else if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	if err := s.users.UpdateProfile(ctx, id, name, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailInUse
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.users.GetByID(ctx, id)
}
