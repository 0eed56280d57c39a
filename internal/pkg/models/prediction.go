package models

// ClassNames is the fixed, ordered label set every model output vector is
// indexed by. Reordering it invalidates the aggregation.
var ClassNames = []string{"Glioma", "Meningioma", "No Tumor", "pituitary"}

// NumClasses is the length of every per-model probability vector
const NumClasses = 4

// Prediction represents the aggregated classification for one upload
type Prediction struct {
	Filename       string  `json:"filename"`
	PredictedClass string  `json:"predicted_class"`
	Confidence     float64 `json:"confidence"`
}

// DiagnosisEvent is published after a completed classification
type DiagnosisEvent struct {
	UserID         string  `json:"user_id"`
	Filename       string  `json:"filename"`
	PredictedClass string  `json:"predicted_class"`
	Confidence     float64 `json:"confidence"`
	ModelCount     int     `json:"model_count"`
}

// AuthEvent is published on registration and successful verification
type AuthEvent struct {
	Username string `json:"username"`
	UserID   string `json:"user_id,omitempty"`
	Factor   string `json:"factor,omitempty"`
}
