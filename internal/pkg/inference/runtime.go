package inference

import (
	"fmt"

	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
	ort "github.com/yalue/onnxruntime_go"
)

// Runtime owns the ONNX environment and the ordered set of loaded models.
// It is created once at startup; a load failure there is fatal.
type Runtime struct {
	models []*Model
}

// NewRuntime initializes the ONNX environment and loads every configured
// model in order.
func NewRuntime(cfg models.InferenceConfig) (*Runtime, error) {
	if len(cfg.ModelPaths) == 0 {
		return nil, fmt.Errorf("no model paths configured")
	}

	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize onnxruntime: %w", err)
	}

	rt := &Runtime{}
	for _, path := range cfg.ModelPaths {
		model, err := LoadModel(path, cfg.InputName, cfg.OutputName)
		if err != nil {
			rt.Close()
			return nil, err
		}
		rt.models = append(rt.models, model)
	}

	return rt, nil
}

// Predictors returns the loaded models in configuration order
func (rt *Runtime) Predictors() []Predictor {
	predictors := make([]Predictor, len(rt.models))
	for i, m := range rt.models {
		predictors[i] = m
	}
	return predictors
}

// Close destroys all sessions and the ONNX environment
func (rt *Runtime) Close() {
	for _, m := range rt.models {
		m.Destroy()
	}
	rt.models = nil
	_ = ort.DestroyEnvironment()
}
