package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/neuroscan-id/neuroscan/internal/pkg/constants"
	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
)

// PublishUserRegistered publishes a registration event
func (g *AuthGW) PublishUserRegistered(ctx context.Context, event *models.AuthEvent) error {
	return g.publish(constants.SubjectUserRegistered, event)
}

// PublishOTPVerified publishes a successful second-factor verification event
func (g *AuthGW) PublishOTPVerified(ctx context.Context, event *models.AuthEvent) error {
	return g.publish(constants.SubjectOTPVerified, event)
}

func (g *AuthGW) publish(subject string, event *models.AuthEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := g.natsClient.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", subject, err)
	}

	return nil
}
