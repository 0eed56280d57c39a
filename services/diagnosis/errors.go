package diagnosis

import "errors"

var (
	// ErrDecode indicates the uploaded bytes are not a decodable image
	ErrDecode = errors.New("image could not be decoded")

	// ErrNoModels indicates classification was attempted with no loaded models
	ErrNoModels = errors.New("no models available")
)
