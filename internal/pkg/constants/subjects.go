package constants

// NATS Subjects
const (
	// Auth service
	SubjectUserRegistered = "auth.user.registered"
	SubjectOTPVerified    = "auth.otp.verified"

	// Diagnosis service
	SubjectDiagnosisCompleted = "diagnosis.completed"
)
