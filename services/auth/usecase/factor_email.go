package usecase

import (
	"context"
	"fmt"

	"github.com/neuroscan-id/neuroscan/internal/pkg/logger"
	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
	"github.com/neuroscan-id/neuroscan/internal/utils"
	"github.com/neuroscan-id/neuroscan/services/auth"
)

// emailFactor implements the email-code second factor: a random six-digit
// code stored as the sole pending challenge per recipient and delivered
// over SMTP.
type emailFactor struct {
	challengeRepo auth.ChallengeRepo
	authGW        auth.AuthGW
}

func newEmailFactor(challengeRepo auth.ChallengeRepo, authGW auth.AuthGW) *emailFactor {
	return &emailFactor{
		challengeRepo: challengeRepo,
		authGW:        authGW,
	}
}

// Request stores a fresh challenge (overwriting any prior one) and then
// attempts delivery. On transport failure the challenge stays pending and
// the caller sees a delivery error.
func (f *emailFactor) Request(ctx context.Context, user *models.User) error {
	code, err := utils.GenerateOTPCode()
	if err != nil {
		return err
	}

	challenge := &models.Challenge{
		Recipient: user.Email,
		Code:      code,
	}

	if err := f.challengeRepo.StoreChallenge(ctx, challenge); err != nil {
		return fmt.Errorf("failed to store challenge: %w", err)
	}

	if err := f.authGW.SendOTPEmail(ctx, user.Email, code); err != nil {
		logger.Error("OTP delivery failed, challenge left pending",
			logger.String("recipient", user.Email),
			logger.Err(err))
		return auth.ErrDeliveryFailed
	}

	return nil
}

// Verify consumes the pending challenge on an exact match. Wrong guesses
// do not burn the challenge; a consumed challenge cannot be replayed.
func (f *emailFactor) Verify(ctx context.Context, user *models.User, code string) error {
	ok, err := f.challengeRepo.ConsumeChallenge(ctx, user.Email, code)
	if err != nil {
		return fmt.Errorf("failed to verify challenge: %w", err)
	}
	if !ok {
		return auth.ErrInvalidCode
	}

	return nil
}
