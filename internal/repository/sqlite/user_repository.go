package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	is_verified INTEGER NOT NULL DEFAULT 0,
	reset_otp_hash TEXT NULL,
	reset_otp_expires_at DATETIME NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id, name, email, password_hash, is_verified, reset_otp_hash, reset_otp_expires_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, NULL, NULL, ?, ?)`,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		boolToInt(user.IsVerified),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, email, password_hash, is_verified, reset_otp_hash, reset_otp_expires_at, created_at, updated_at
FROM users
WHERE email = ?`,
		email,
	)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, email, password_hash, is_verified, reset_otp_hash, reset_otp_expires_at, created_at, updated_at
FROM users
WHERE id = ?`,
		id,
	)
	return scanUser(row)
}

// SetResetOtp stores the hashed OTP and its expiry in one statement.
// A prior outstanding OTP is overwritten (last request wins).
func (r *UserRepository) SetResetOtp(ctx context.Context, id, otpHash string, expiresAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE users
SET reset_otp_hash = ?, reset_otp_expires_at = ?, updated_at = ?
WHERE id = ?`,
		otpHash,
		expiresAt.UTC(),
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return fmt.Errorf("set reset otp: %w", err)
	}
	return requireRowAffected(res)
}

// UpdatePassword replaces the password hash and clears both OTP columns
// in the same statement.
func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE users
SET password_hash = ?, reset_otp_hash = NULL, reset_otp_expires_at = NULL, updated_at = ?
WHERE id = ?`,
		passwordHash,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return requireRowAffected(res)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id, name, email string) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE users
SET name = ?, email = ?, updated_at = ?
WHERE id = ?`,
		name,
		email,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateEmail
		}
		return fmt.Errorf("update profile: %w", err)
	}
	return requireRowAffected(res)
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var (
		user       domain.User
		isVerified int
		otpHash    sql.NullString
		otpExpires sql.NullTime
	)
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&isVerified,
		&otpHash,
		&otpExpires,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	user.IsVerified = isVerified != 0
	if otpHash.Valid {
		user.ResetOtpHash = &otpHash.String
	}
	if otpExpires.Valid {
		t := otpExpires.Time
		user.ResetOtpExpiresAt = &t
	}
	return &user, nil
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
