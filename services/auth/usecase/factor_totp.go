package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
	"github.com/neuroscan-id/neuroscan/services/auth"
	"github.com/pquerna/otp/totp"
)

// totpFactor implements the authenticator-app second factor. Codes are
// derived from the user's persisted secret; nothing is consumed on
// verification, so a code stays valid for its whole time window.
type totpFactor struct {
	issuer string
}

func newTOTPFactor(issuer string) *totpFactor {
	return &totpFactor{issuer: issuer}
}

// Request is a no-op: the authenticator app generates the code locally.
func (f *totpFactor) Request(ctx context.Context, user *models.User) error {
	return nil
}

// Verify checks the claimed code against the current time step with the
// library's default skew tolerance.
func (f *totpFactor) Verify(ctx context.Context, user *models.User, code string) error {
	if !user.OTPSecret.Valid || user.OTPSecret.String == "" {
		return auth.ErrInvalidCode
	}

	if !totp.Validate(code, user.OTPSecret.String) {
		return auth.ErrInvalidCode
	}

	return nil
}

// generateTOTPSecret mints a new base32-encoded 160-bit secret
func generateTOTPSecret(issuer, account string) (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: account,
		SecretSize:  20,
	})
	if err != nil {
		return "", err
	}
	return key.Secret(), nil
}

// ProvisioningURI renders the standard otpauth enrollment URI for an
// existing secret. Pure function of its inputs.
func ProvisioningURI(issuer, account, secret string) string {
	params := url.Values{}
	params.Set("secret", secret)
	params.Set("issuer", issuer)

	u := url.URL{
		Scheme:   "otpauth",
		Host:     "totp",
		Path:     "/" + issuer + ":" + account,
		RawQuery: params.Encode(),
	}

	return u.String()
}

// SetupTOTP returns the provisioning URI for the user's secret, creating
// and persisting one if the account predates the TOTP deployment.
func (u *AuthUC) SetupTOTP(ctx context.Context, username string) (*models.TOTPSetupResponse, error) {
	user, err := u.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	secret := user.OTPSecret.String
	if !user.OTPSecret.Valid || secret == "" {
		secret, err = generateTOTPSecret(u.cfg.Auth.TOTPIssuer, username)
		if err != nil {
			return nil, fmt.Errorf("failed to generate totp secret: %w", err)
		}
		if err := u.userRepo.UpdateOTPSecret(ctx, username, secret); err != nil {
			return nil, fmt.Errorf("failed to persist totp secret: %w", err)
		}
	}

	return &models.TOTPSetupResponse{
		OTPURI: ProvisioningURI(u.cfg.Auth.TOTPIssuer, username, secret),
	}, nil
}
