package diagnosis

import (
	"context"

	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/neuroscan-id/neuroscan/services/diagnosis DiagnosisGW

// DiagnosisGW represents the outbound gateway interface for the diagnosis
// service
type DiagnosisGW interface {
	PublishDiagnosisCompleted(ctx context.Context, event *models.DiagnosisEvent) error
}
