package usecase

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
	"github.com/neuroscan-id/neuroscan/services/auth"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userWithSecret(secret string) *models.User {
	return &models.User{
		Username:  "alice",
		Email:     "alice@example.com",
		OTPSecret: sql.NullString{String: secret, Valid: secret != ""},
	}
}

func TestTOTPFactorVerify_ValidCode(t *testing.T) {
	secret, err := generateTOTPSecret("NeuroScan", "alice")
	require.NoError(t, err)

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)

	factor := newTOTPFactor("NeuroScan")
	err = factor.Verify(context.Background(), userWithSecret(secret), code)

	assert.NoError(t, err)
}

func TestTOTPFactorVerify_WrongCode(t *testing.T) {
	secret, err := generateTOTPSecret("NeuroScan", "alice")
	require.NoError(t, err)

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)

	// Flip one digit so the code no longer matches
	wrong := []byte(code)
	if wrong[0] == '9' {
		wrong[0] = '0'
	} else {
		wrong[0]++
	}

	factor := newTOTPFactor("NeuroScan")
	err = factor.Verify(context.Background(), userWithSecret(secret), string(wrong))

	assert.ErrorIs(t, err, auth.ErrInvalidCode)
}

func TestTOTPFactorVerify_MissingSecret(t *testing.T) {
	factor := newTOTPFactor("NeuroScan")
	err := factor.Verify(context.Background(), userWithSecret(""), "123456")

	assert.ErrorIs(t, err, auth.ErrInvalidCode)
}

func TestTOTPFactorVerify_SameCodeNotConsumed(t *testing.T) {
	secret, err := generateTOTPSecret("NeuroScan", "alice")
	require.NoError(t, err)

	now := time.Now()
	code, err := totp.GenerateCode(secret, now)
	require.NoError(t, err)

	factor := newTOTPFactor("NeuroScan")
	user := userWithSecret(secret)

	// A code stays valid for its whole time window
	assert.NoError(t, factor.Verify(context.Background(), user, code))
	assert.NoError(t, factor.Verify(context.Background(), user, code))
}

func TestTOTPFactorRequest_NoOp(t *testing.T) {
	factor := newTOTPFactor("NeuroScan")
	err := factor.Request(context.Background(), userWithSecret(""))

	assert.NoError(t, err)
}

func TestProvisioningURI(t *testing.T) {
	uri := ProvisioningURI("NeuroScan", "alice", "JBSWY3DPEHPK3PXP")

	assert.Equal(t, "otpauth://totp/NeuroScan:alice?issuer=NeuroScan&secret=JBSWY3DPEHPK3PXP", uri)
}

func TestSetupTOTP_ExistingSecret(t *testing.T) {
	uc, mockUserRepo, _, _, _, ctrl := setupUsecaseTest(t, TOTPFactorName)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().
		GetUserByUsername(gomock.Any(), "alice").
		Return(userWithSecret("JBSWY3DPEHPK3PXP"), nil)

	resp, err := uc.SetupTOTP(context.Background(), "alice")

	require.NoError(t, err)
	assert.Contains(t, resp.OTPURI, "secret=JBSWY3DPEHPK3PXP")
	assert.Contains(t, resp.OTPURI, "issuer=NeuroScan")
}

func TestSetupTOTP_ProvisionsMissingSecret(t *testing.T) {
	uc, mockUserRepo, _, _, _, ctrl := setupUsecaseTest(t, TOTPFactorName)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().
		GetUserByUsername(gomock.Any(), "alice").
		Return(userWithSecret(""), nil)

	var persisted string
	mockUserRepo.EXPECT().
		UpdateOTPSecret(gomock.Any(), "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, secret string) error {
			persisted = secret
			return nil
		})

	resp, err := uc.SetupTOTP(context.Background(), "alice")

	require.NoError(t, err)
	assert.NotEmpty(t, persisted)
	assert.Contains(t, resp.OTPURI, "secret="+persisted)
}

func TestSetupTOTP_UserNotFound(t *testing.T) {
	uc, mockUserRepo, _, _, _, ctrl := setupUsecaseTest(t, TOTPFactorName)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().
		GetUserByUsername(gomock.Any(), "ghost").
		Return(nil, auth.ErrUserNotFound)

	resp, err := uc.SetupTOTP(context.Background(), "ghost")

	assert.ErrorIs(t, err, auth.ErrUserNotFound)
	assert.Nil(t, resp)
}
