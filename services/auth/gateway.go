package auth

import (
	"context"

	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/neuroscan-id/neuroscan/services/auth AuthGW

// AuthGW represents the outbound gateway interface for the auth service
type AuthGW interface {
	// SendOTPEmail delivers a verification code over the email transport
	SendOTPEmail(ctx context.Context, recipient, code string) error

	// domain events
	PublishUserRegistered(ctx context.Context, event *models.AuthEvent) error
	PublishOTPVerified(ctx context.Context, event *models.AuthEvent) error
}
