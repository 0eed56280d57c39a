package usecase

import (
	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
	"github.com/neuroscan-id/neuroscan/services/auth"
)

// TOTPFactorName selects the authenticator-app second factor; any other
// configured value falls back to the email-code factor.
const TOTPFactorName = "totp"

// AuthUC implements the authentication usecase
type AuthUC struct {
	userRepo      auth.UserRepo
	challengeRepo auth.ChallengeRepo
	authGW        auth.AuthGW
	factor        auth.SecondFactor
	cfg           *models.Config
}

// NewAuthUC creates a new auth usecase instance. The second-factor
// mechanism is chosen once here; the two variants are never mixed within
// one deployment.
func NewAuthUC(
	userRepo auth.UserRepo,
	challengeRepo auth.ChallengeRepo,
	authGW auth.AuthGW,
	cfg *models.Config,
) *AuthUC {
	uc := &AuthUC{
		userRepo:      userRepo,
		challengeRepo: challengeRepo,
		authGW:        authGW,
		cfg:           cfg,
	}

	if cfg.Auth.SecondFactor == TOTPFactorName {
		uc.factor = newTOTPFactor(cfg.Auth.TOTPIssuer)
	} else {
		uc.factor = newEmailFactor(challengeRepo, authGW)
	}

	return uc
}

// UsesTOTP reports whether this deployment runs the authenticator-app
// variant.
func (u *AuthUC) UsesTOTP() bool {
	return u.cfg.Auth.SecondFactor == TOTPFactorName
}
