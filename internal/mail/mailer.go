package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer delivers transactional email. Implementations must be safe for
// concurrent use.
type Mailer interface {
	SendWelcome(ctx context.Context, to, name string) error
	SendResetOTP(ctx context.Context, to, otp string) error
}

// SMTPConfig carries the outbound mail credentials loaded at startup.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	sender string
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		sender: cfg.Sender,
	}
}

func (m *SMTPMailer) SendWelcome(ctx context.Context, to, name string) error {
	body := fmt.Sprintf(
		"Hello %s, Welcome to our Website. Your account has been created with email id: %s. We are glad to have you on board.",
		name, to,
	)
	return m.send(ctx, to, "Welcome to our Website", body)
}

func (m *SMTPMailer) SendResetOTP(ctx context.Context, to, otp string) error {
	body := fmt.Sprintf(
		"Your OTP for resetting your password is %s. This OTP is valid for 10 minutes.",
		otp,
	)
	return m.send(ctx, to, "Password Reset OTP", body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
