package mail

import (
	"context"

	"github.com/sirupsen/logrus"
)

// NopMailer is used when no SMTP relay is configured. It logs what would
// have been sent so local development still shows OTP codes.
type NopMailer struct {
	Logger *logrus.Logger
}

func (m NopMailer) SendWelcome(ctx context.Context, to, name string) error {
	if m.Logger != nil {
		m.Logger.Infof("mail disabled, skipping welcome mail to %s", to)
	}
	return nil
}

func (m NopMailer) SendResetOTP(ctx context.Context, to, otp string) error {
	if m.Logger != nil {
		m.Logger.Infof("mail disabled, reset OTP for %s: %s", to, otp)
	}
	return nil
}
