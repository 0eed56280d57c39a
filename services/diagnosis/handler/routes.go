package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/neuroscan-id/neuroscan/services/diagnosis/handler/http"
)

// Handler coordinates the HTTP handlers for the diagnosis service
type Handler struct {
	diagnosisHandler *http.DiagnosisHandler
}

// NewHandler creates and initializes the diagnosis handlers
func NewHandler(diagnosisHandler *http.DiagnosisHandler) *Handler {
	return &Handler{diagnosisHandler: diagnosisHandler}
}

// RegisterRoutes registers the diagnosis routes behind the given JWT
// middleware
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtMiddleware echo.MiddlewareFunc) {
	protected := e.Group("", jwtMiddleware)
	protected.POST("/predict", h.diagnosisHandler.Predict)
}
