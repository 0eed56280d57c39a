package usecase

import (
	"github.com/neuroscan-id/neuroscan/internal/pkg/inference"
	"github.com/neuroscan-id/neuroscan/services/diagnosis"
)

// DiagnosisUC implements the classification usecase
type DiagnosisUC struct {
	predictors  []inference.Predictor
	diagnosisGW diagnosis.DiagnosisGW
}

// NewDiagnosisUC creates a new diagnosis usecase instance over the models
// loaded at startup
func NewDiagnosisUC(predictors []inference.Predictor, diagnosisGW diagnosis.DiagnosisGW) *DiagnosisUC {
	return &DiagnosisUC{
		predictors:  predictors,
		diagnosisGW: diagnosisGW,
	}
}
