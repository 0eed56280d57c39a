package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/neuroscan-id/neuroscan/internal/pkg/constants"
	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
)

// PublishDiagnosisCompleted publishes a completed classification event
func (g *DiagnosisGW) PublishDiagnosisCompleted(ctx context.Context, event *models.DiagnosisEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := g.natsClient.Publish(constants.SubjectDiagnosisCompleted, data); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", constants.SubjectDiagnosisCompleted, err)
	}

	return nil
}
