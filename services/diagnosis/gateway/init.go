package gateway

import (
	natspkg "github.com/neuroscan-id/neuroscan/internal/pkg/nats"
)

// DiagnosisGW implements the outbound gateway for the diagnosis service
type DiagnosisGW struct {
	natsClient *natspkg.Client
}

// NewDiagnosisGW creates a new diagnosis gateway instance
func NewDiagnosisGW(natsClient *natspkg.Client) *DiagnosisGW {
	return &DiagnosisGW{natsClient: natsClient}
}
