package auth

import (
	"context"

	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/neuroscan-id/neuroscan/services/auth UserRepo,ChallengeRepo

// UserRepo represents the user store interface
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateOTPSecret(ctx context.Context, username, secret string) error
}

// ChallengeRepo represents the pending email-challenge store interface
type ChallengeRepo interface {
	// StoreChallenge stores ch as the sole pending challenge for its
	// recipient, overwriting any prior one (last issue wins).
	StoreChallenge(ctx context.Context, challenge *models.Challenge) error

	// ConsumeChallenge deletes the pending challenge and returns true iff
	// one exists for the recipient and its code matches exactly. Any other
	// outcome leaves state unchanged.
	ConsumeChallenge(ctx context.Context, recipient, code string) (bool, error)
}
