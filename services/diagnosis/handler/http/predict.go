package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/neuroscan-id/neuroscan/internal/pkg/logger"
	"github.com/neuroscan-id/neuroscan/internal/utils"
	"github.com/neuroscan-id/neuroscan/services/diagnosis"
)

// maxUploadBytes caps a single scan upload at 20 MiB
const maxUploadBytes = 20 << 20

// DiagnosisHandler handles HTTP requests for scan classification
type DiagnosisHandler struct {
	diagnosisUC diagnosis.DiagnosisUC
}

// NewDiagnosisHandler creates a new diagnosis handler
func NewDiagnosisHandler(diagnosisUC diagnosis.DiagnosisUC) *DiagnosisHandler {
	return &DiagnosisHandler{diagnosisUC: diagnosisUC}
}

// Predict accepts a multipart scan upload and returns the aggregated
// classification
func (h *DiagnosisHandler) Predict(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequestResponse(c, "Missing file upload")
	}
	if fileHeader.Size > maxUploadBytes {
		return utils.BadRequestResponse(c, "File too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Unreadable file upload")
	}
	defer src.Close()

	raw, err := io.ReadAll(io.LimitReader(src, maxUploadBytes))
	if err != nil {
		return utils.BadRequestResponse(c, "Unreadable file upload")
	}

	userID, _ := c.Get("user_id").(string)

	prediction, err := h.diagnosisUC.Classify(c.Request().Context(), userID, fileHeader.Filename, raw)
	if err != nil {
		if errors.Is(err, diagnosis.ErrDecode) {
			return utils.BadRequestResponse(c, "File is not a decodable image")
		}
		logger.Error("Classification failed",
			logger.String("filename", fileHeader.Filename),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Classification failed")
	}

	return c.JSON(http.StatusOK, prediction)
}
