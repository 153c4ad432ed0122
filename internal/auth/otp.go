package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// OTPValidity bounds how long a reset code stays usable after generation.
const OTPValidity = 10 * time.Minute

const otpMin = 100000

// GenerateOTP returns a uniformly random six digit code in [100000, 999999].
// The leading digit is never zero, so the string form is always six runes.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%d", otpMin+n.Int64()), nil
}
