package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"taskboard/internal/auth"
	"taskboard/internal/domain"
	"taskboard/internal/mail"
	"taskboard/internal/repository"
)

var (
	// ErrMissingFields indicates a required request field was empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrUserAlreadyExists is returned when registering with a taken email.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidEmail is returned by Login when no account matches the email.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrInvalidPassword is returned by Login when the password does not match.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrUserNotFound is returned by the reset flows for an unknown email.
	ErrUserNotFound = errors.New("user not found")
	// ErrOtpRequestNotFound is returned when no reset OTP is outstanding.
	ErrOtpRequestNotFound = errors.New("otp request not found")
	// ErrOtpExpired is returned when the stored OTP validity window elapsed.
	ErrOtpExpired = errors.New("otp has expired")
	// ErrInvalidOtp is returned when the supplied code does not match.
	ErrInvalidOtp = errors.New("invalid otp")
	// ErrWeakPassword is returned when the new password is shorter than 6 characters.
	ErrWeakPassword = errors.New("password too short")
)

const minPasswordLen = 6

// AuthService orchestrates registration, credential verification and the
// password-reset OTP lifecycle. All state lives in the user repository.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	SendResetOtp(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
}

type authService struct {
	users  repository.UserRepository
	hasher auth.PasswordHasher
	mailer mail.Mailer
	logger *logrus.Logger

	now func() time.Time
}

func NewAuthService(users repository.UserRepository, hasher auth.PasswordHasher, mailer mail.Mailer, logger *logrus.Logger) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		mailer: mailer,
		logger: logger,
		now:    time.Now,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	// Pre-check keeps the common case cheap; the unique constraint on
	// users.email is what actually enforces uniqueness.
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	// Welcome mail is best effort: a flaky relay must never block or roll
	// back account creation.
	go func(to, name string) {
		if err := s.mailer.SendWelcome(context.Background(), to, name); err != nil {
			s.logger.Warnf("send welcome mail: %v", err)
		}
	}(user.Email, user.Name)

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidEmail
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidPassword
	}
	return user, nil
}

func (s *authService) SendResetOtp(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrMissingFields
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	otp, err := auth.GenerateOTP()
	if err != nil {
		return err
	}
	otpHash, err := s.hasher.Hash(otp)
	if err != nil {
		return err
	}

	expiresAt := s.now().UTC().Add(auth.OTPValidity)
	if err := s.users.SetResetOtp(ctx, user.ID, otpHash, expiresAt); err != nil {
		return err
	}

	// The operation's contract is "OTP sent", so this send is synchronous
	// and its failure surfaces to the caller.
	if err := s.mailer.SendResetOTP(ctx, user.Email, otp); err != nil {
		return fmt.Errorf("send reset otp: %w", err)
	}
	return nil
}

// ResetPassword validates in a fixed order: fields, user existence,
// outstanding request, expiry, code match, password strength. The expiry
// check runs before the hash comparison so an expired-but-correct code is
// rejected without one. The OTP columns are cleared by the same statement
// that writes the new hash.
func (s *authService) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	email = strings.TrimSpace(email)
	if email == "" || otp == "" || newPassword == "" {
		return ErrMissingFields
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !user.HasPendingReset() {
		return ErrOtpRequestNotFound
	}
	if user.ResetOtpExpiresAt == nil || s.now().After(*user.ResetOtpExpiresAt) {
		return ErrOtpExpired
	}
	if !s.hasher.Verify(otp, *user.ResetOtpHash) {
		return ErrInvalidOtp
	}
	if len(newPassword) < minPasswordLen {
		return ErrWeakPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, user.ID, hash)
}
