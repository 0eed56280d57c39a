package diagnosis

import (
	"context"

	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/neuroscan-id/neuroscan/services/diagnosis DiagnosisUC

// DiagnosisUC represents the classification usecase interface
type DiagnosisUC interface {
	// Classify preprocesses one uploaded scan and returns the aggregated
	// prediction across all loaded models.
	Classify(ctx context.Context, userID, filename string, raw []byte) (*models.Prediction, error)
}
