package handler

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/neuroscan-id/neuroscan/internal/pkg/database"
	"github.com/neuroscan-id/neuroscan/internal/pkg/middleware"
	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
	"github.com/neuroscan-id/neuroscan/services/auth/handler/http"
	"github.com/neuroscan-id/neuroscan/services/auth/usecase"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler *http.AuthHandler
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewHandler creates and initializes the auth handlers
func NewHandler(
	authHandler *http.AuthHandler,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			// Parse the token directly from Authorization header to avoid type conflicts
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" && len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString := authHeader[7:]
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(h.cfg.JWT.Secret), nil
				})
				if err == nil && token.Valid {
					if claims, ok := token.Claims.(jwt.MapClaims); ok {
						if userID, exists := claims["user_id"]; exists {
							c.Set("user_id", userID)
						}
						if username, exists := claims["username"]; exists {
							c.Set("username", username)
						}
					}
				}
			}
		},
	})
}

// RegisterRoutes registers the auth routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	verifyLimiter := middleware.VerifyAttemptLimiter(
		h.cfg.Auth.VerifyRateLimit,
		time.Duration(h.cfg.Auth.VerifyRatePeriod)*time.Minute,
		h.redisClient.Client,
	)

	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/otp/request", h.authHandler.RequestOTP)
	authGroup.POST("/otp/verify", h.authHandler.VerifyOTP, verifyLimiter)

	if h.cfg.Auth.SecondFactor == usecase.TOTPFactorName {
		authGroup.POST("/totp/setup", h.authHandler.SetupTOTP)
	}
}
