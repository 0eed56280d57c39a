package auth

import (
	"context"

	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/neuroscan-id/neuroscan/services/auth AuthUC,SecondFactor

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	// account lifecycle
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) error

	// second factor: exactly one mechanism is active per deployment
	RequestChallenge(ctx context.Context, username string) error
	VerifyChallenge(ctx context.Context, username, code string) (*models.AuthResponse, error)
	SetupTOTP(ctx context.Context, username string) (*models.TOTPSetupResponse, error)
}

// SecondFactor is the pluggable second-factor capability. The email-code
// and authenticator-app implementations satisfy it; configuration selects
// one at startup.
type SecondFactor interface {
	Request(ctx context.Context, user *models.User) error
	Verify(ctx context.Context, user *models.User, code string) error
}
