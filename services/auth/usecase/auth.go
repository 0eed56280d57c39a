package usecase

import (
	"context"
	"errors"
	"fmt"

	jwtpkg "github.com/neuroscan-id/neuroscan/internal/pkg/jwt"
	"github.com/neuroscan-id/neuroscan/internal/pkg/logger"
	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
	"github.com/neuroscan-id/neuroscan/services/auth"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new account. On TOTP deployments the authenticator
// secret is provisioned here so enrollment can happen right after signup.
func (u *AuthUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	_, err := u.userRepo.GetUserByUsername(ctx, req.Username)
	if err == nil {
		return nil, auth.ErrUsernameTaken
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if u.UsesTOTP() {
		secret, err := generateTOTPSecret(u.cfg.Auth.TOTPIssuer, req.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to generate totp secret: %w", err)
		}
		user.OTPSecret.String = secret
		user.OTPSecret.Valid = true
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Event publishing is best-effort; registration already succeeded
	if err := u.authGW.PublishUserRegistered(ctx, &models.AuthEvent{
		Username: user.Username,
		UserID:   user.ID.String(),
	}); err != nil {
		logger.Warn("Failed to publish registration event",
			logger.String("username", user.Username),
			logger.Err(err))
	}

	return user, nil
}

// Login verifies credentials and, on success, triggers the active second
// factor's challenge. The credential check always happens strictly before
// any second-factor step.
func (u *AuthUC) Login(ctx context.Context, username, password string) error {
	user, err := u.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			// Unknown usernames fail the same way as bad passwords
			return auth.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return auth.ErrInvalidCredentials
	}

	return u.factor.Request(ctx, user)
}

// RequestChallenge issues (or re-issues) a second-factor challenge for a
// known user.
func (u *AuthUC) RequestChallenge(ctx context.Context, username string) error {
	user, err := u.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	return u.factor.Request(ctx, user)
}

// VerifyChallenge verifies a claimed second-factor code and issues a
// session token on success.
func (u *AuthUC) VerifyChallenge(ctx context.Context, username, code string) (*models.AuthResponse, error) {
	user, err := u.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := u.factor.Verify(ctx, user, code); err != nil {
		return nil, err
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Username, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := u.authGW.PublishOTPVerified(ctx, &models.AuthEvent{
		Username: user.Username,
		UserID:   user.ID.String(),
		Factor:   u.cfg.Auth.SecondFactor,
	}); err != nil {
		logger.Warn("Failed to publish verification event",
			logger.String("username", user.Username),
			logger.Err(err))
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		Username:  user.Username,
		ExpiresAt: expiresAt,
	}, nil
}
