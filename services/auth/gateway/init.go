package gateway

import (
	natspkg "github.com/neuroscan-id/neuroscan/internal/pkg/nats"
	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
)

// AuthGW implements the outbound gateway for the auth service: email
// delivery plus domain event publishing.
type AuthGW struct {
	mailer     *Mailer
	natsClient *natspkg.Client
}

// NewAuthGW creates a new auth gateway instance
func NewAuthGW(cfg models.SMTPConfig, natsClient *natspkg.Client) *AuthGW {
	return &AuthGW{
		mailer:     NewMailer(cfg),
		natsClient: natsClient,
	}
}
