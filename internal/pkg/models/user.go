package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. OTPSecret is only populated on
// TOTP deployments; email-OTP deployments never write it.
type User struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	Username     string         `json:"username" db:"username"`
	Email        string         `json:"email" db:"email"`
	PasswordHash string         `json:"-" db:"password_hash"`
	OTPSecret    sql.NullString `json:"-" db:"otp_secret"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
	IsActive     bool           `json:"is_active" db:"is_active"`
}

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a request to verify credentials
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// OTPRequest represents a request to issue a second-factor challenge
type OTPRequest struct {
	Username string `json:"username" validate:"required"`
}

// VerifyRequest represents a request to verify a second-factor code
type VerifyRequest struct {
	Username string `json:"username" validate:"required"`
	OTP      string `json:"otp" validate:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	ExpiresAt int64  `json:"expires_at"`
}

// TOTPSetupResponse carries the provisioning URI for QR enrollment
type TOTPSetupResponse struct {
	OTPURI string `json:"otp_uri"`
}
