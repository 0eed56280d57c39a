package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/neuroscan-id/neuroscan/internal/pkg/logger"
	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
	"github.com/neuroscan-id/neuroscan/internal/utils"
	"github.com/neuroscan-id/neuroscan/services/auth"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Register handles account creation requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Username, email and password are required")
	}

	user, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrUsernameTaken) {
			return utils.ConflictResponse(c, "Username already registered")
		}
		logger.Error("Failed to register user",
			logger.String("username", req.Username),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to register user")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", user)
}

// Login handles credential verification requests. A successful login
// triggers the active second factor's challenge.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Username == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Username and password are required")
	}

	err := h.authUC.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return utils.UnauthorizedResponse(c, "Invalid username or password")
		case errors.Is(err, auth.ErrDeliveryFailed):
			return utils.InternalServerErrorResponse(c, "Failed to send verification code")
		default:
			logger.Error("Login failed",
				logger.String("username", req.Username),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Login failed")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Credentials verified, complete the second factor", nil)
}

// RequestOTP handles second-factor challenge (re-)issuance requests
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.OTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Username == "" {
		return utils.BadRequestResponse(c, "Username is required")
	}

	err := h.authUC.RequestChallenge(c.Request().Context(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			return utils.NotFoundResponse(c, "User not found")
		case errors.Is(err, auth.ErrDeliveryFailed):
			return utils.InternalServerErrorResponse(c, "Failed to send verification code")
		default:
			logger.Error("Failed to issue challenge",
				logger.String("username", req.Username),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to issue challenge")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", nil)
}

// VerifyOTP handles second-factor code verification requests
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Username == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "Username and OTP are required")
	}

	authResponse, err := h.authUC.VerifyChallenge(c.Request().Context(), req.Username, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			return utils.NotFoundResponse(c, "User not found")
		case errors.Is(err, auth.ErrInvalidCode):
			return utils.BadRequestResponse(c, "Invalid OTP")
		default:
			logger.Error("Failed to verify challenge",
				logger.String("username", req.Username),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to verify challenge")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", authResponse)
}

// SetupTOTP handles authenticator enrollment requests, returning the
// provisioning URI for client-side QR rendering
func (h *AuthHandler) SetupTOTP(c echo.Context) error {
	var req models.OTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Username == "" {
		return utils.BadRequestResponse(c, "Username is required")
	}

	setup, err := h.authUC.SetupTOTP(c.Request().Context(), req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.Error("Failed to set up TOTP",
			logger.String("username", req.Username),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to set up TOTP")
	}

	return c.JSON(http.StatusOK, setup)
}
