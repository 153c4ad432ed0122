package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the rest of the stored hashes were created
// with. Changing it only affects newly written hashes.
const bcryptCost = 10

// PasswordHasher produces and checks salted one-way hashes. The same
// hasher is used for login passwords and reset OTP values.
type PasswordHasher struct{}

func NewPasswordHasher() PasswordHasher {
	return PasswordHasher{}
}

// Hash returns a salted bcrypt hash of plaintext. Two calls with the same
// input produce different outputs.
func (PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash.
func (PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
