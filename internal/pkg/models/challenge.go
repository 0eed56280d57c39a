package models

import (
	"time"
)

// Challenge represents a pending email OTP challenge. At most one challenge
// is pending per recipient; issuing a new one overwrites the prior.
type Challenge struct {
	Recipient string    `json:"recipient"`
	Code      string    `json:"code"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
