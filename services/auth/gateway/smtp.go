package gateway

import (
	"context"
	"fmt"

	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
	"github.com/wneessen/go-mail"
)

// Mailer delivers verification codes over SMTP
type Mailer struct {
	cfg models.SMTPConfig
}

// NewMailer creates a new SMTP mailer
func NewMailer(cfg models.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendOTPEmail sends a verification code to the recipient. A transport
// failure is returned to the caller; any stored challenge stays pending.
func (g *AuthGW) SendOTPEmail(ctx context.Context, recipient, code string) error {
	return g.mailer.Send(ctx, recipient, code)
}

// Send builds and delivers the verification message
func (m *Mailer) Send(ctx context.Context, recipient, code string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject("Your 2FA Code")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf("Your verification code is: %s", code))

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	return nil
}
