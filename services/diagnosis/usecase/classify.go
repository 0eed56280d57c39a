package usecase

import (
	"context"
	"fmt"

	"github.com/neuroscan-id/neuroscan/internal/pkg/logger"
	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
	"github.com/neuroscan-id/neuroscan/services/diagnosis"
)

// Classify runs the uploaded scan through every loaded model and aggregates
// the per-class probability vectors by element-wise arithmetic mean. The
// predicted class is the argmax of the mean vector (first occurrence on
// ties) and the confidence is its value, returned raw without thresholding.
func (u *DiagnosisUC) Classify(ctx context.Context, userID, filename string, raw []byte) (*models.Prediction, error) {
	if len(u.predictors) == 0 {
		return nil, diagnosis.ErrNoModels
	}

	input, err := Preprocess(raw)
	if err != nil {
		return nil, err
	}

	mean := make([]float64, models.NumClasses)
	for _, predictor := range u.predictors {
		scores, err := predictor.Predict(input)
		if err != nil {
			return nil, fmt.Errorf("model %s failed: %w", predictor.Name(), err)
		}
		if len(scores) != models.NumClasses {
			return nil, fmt.Errorf("model %s returned %d scores, want %d", predictor.Name(), len(scores), models.NumClasses)
		}
		for i, s := range scores {
			mean[i] += float64(s)
		}
	}
	for i := range mean {
		mean[i] /= float64(len(u.predictors))
	}

	best := 0
	for i := 1; i < len(mean); i++ {
		if mean[i] > mean[best] {
			best = i
		}
	}

	prediction := &models.Prediction{
		Filename:       filename,
		PredictedClass: models.ClassNames[best],
		Confidence:     mean[best],
	}

	if err := u.diagnosisGW.PublishDiagnosisCompleted(ctx, &models.DiagnosisEvent{
		UserID:         userID,
		Filename:       filename,
		PredictedClass: prediction.PredictedClass,
		Confidence:     prediction.Confidence,
		ModelCount:     len(u.predictors),
	}); err != nil {
		logger.Warn("Failed to publish diagnosis event",
			logger.String("filename", filename),
			logger.Err(err))
	}

	return prediction, nil
}
