package inference

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

const (
	// ImageSize is the height and width every model input is resized to
	ImageSize = 224
	// NumClasses is the length of every model output vector
	NumClasses = 4
	// TensorSize is the flattened [1,224,224,1] input length
	TensorSize = 1 * ImageSize * ImageSize * 1
)

// Predictor runs one loaded model over a preprocessed input tensor
type Predictor interface {
	Predict(input []float32) ([]float32, error)
	Name() string
}

// Model wraps a single ONNX session. Input and output tensors are allocated
// once at load time; the mutex serializes Run calls on the shared buffers.
type Model struct {
	name    string
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
	mu      sync.Mutex
}

// LoadModel creates a session for the given ONNX model file. The session is
// expensive to create and must be reused across requests.
func LoadModel(path, inputName, outputName string) (*Model, error) {
	input, err := ort.NewEmptyTensor[float32](ort.NewShape(1, ImageSize, ImageSize, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, NumClasses))
	if err != nil {
		input.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(path,
		[]string{inputName}, []string{outputName},
		[]ort.Value{input}, []ort.Value{output}, nil)
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, fmt.Errorf("failed to load model %s: %w", path, err)
	}

	return &Model{
		name:    path,
		session: session,
		input:   input,
		output:  output,
	}, nil
}

// Name returns the model file path the session was created from
func (m *Model) Name() string {
	return m.name
}

// Predict runs the model over a flattened [1,224,224,1] tensor and returns
// the per-class probability vector.
func (m *Model) Predict(input []float32) ([]float32, error) {
	if len(input) != TensorSize {
		return nil, fmt.Errorf("unexpected input length %d, want %d", len(input), TensorSize)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copy(m.input.GetData(), input)

	if err := m.session.Run(); err != nil {
		return nil, fmt.Errorf("inference failed for model %s: %w", m.name, err)
	}

	// Copy out of the session-owned buffer before releasing the lock
	scores := make([]float32, NumClasses)
	copy(scores, m.output.GetData())

	return scores, nil
}

// Destroy releases the session and its tensors
func (m *Model) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != nil {
		m.session.Destroy()
		m.session = nil
	}
	if m.input != nil {
		m.input.Destroy()
		m.input = nil
	}
	if m.output != nil {
		m.output.Destroy()
		m.output = nil
	}
}
