package usecase

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/neuroscan-id/neuroscan/internal/pkg/inference"
	"github.com/neuroscan-id/neuroscan/services/diagnosis"
	"golang.org/x/image/draw"
)

// Preprocess converts an uploaded scan into the flattened [1,224,224,1]
// tensor every model consumes. The order is fixed: decode, grayscale,
// bilinear resize, scale to [0,1]. Changing it invalidates the models.
func Preprocess(raw []byte) ([]float32, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", diagnosis.ErrDecode, err)
	}

	gray := image.NewGray(img.Bounds())
	draw.Draw(gray, gray.Bounds(), img, img.Bounds().Min, draw.Src)

	resized := image.NewGray(image.Rect(0, 0, inference.ImageSize, inference.ImageSize))
	draw.BiLinear.Scale(resized, resized.Bounds(), gray, gray.Bounds(), draw.Src, nil)

	tensor := make([]float32, inference.TensorSize)
	for i, px := range resized.Pix {
		tensor[i] = float32(px) / 255.0
	}

	return tensor, nil
}
