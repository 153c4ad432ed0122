package domain

import "time"

// User represents an account holder of the system.
//
// ResetOtpHash and ResetOtpExpiresAt are set together when a password
// reset is requested and cleared together when the reset completes.
type User struct {
	ID                string
	Name              string
	Email             string
	PasswordHash      string
	IsVerified        bool
	ResetOtpHash      *string
	ResetOtpExpiresAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasPendingReset reports whether an OTP reset request is stored,
// regardless of whether it has expired.
func (u *User) HasPendingReset() bool {
	return u.ResetOtpHash != nil && *u.ResetOtpHash != ""
}
