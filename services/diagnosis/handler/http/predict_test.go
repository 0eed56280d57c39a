package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
	"github.com/neuroscan-id/neuroscan/services/diagnosis"
	"github.com/neuroscan-id/neuroscan/services/diagnosis/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartUpload(t *testing.T, fieldName, filename string, content []byte) (*bytes.Buffer, string) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func pngBytes(t *testing.T) []byte {
	img := image.NewGray(image.Rect(0, 0, 32, 32))
	for i := range img.Pix {
		img.Pix[i] = uint8(i % 256)
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func setupPredictTest(t *testing.T, body *bytes.Buffer, contentType string) (*mocks.MockDiagnosisUC, *DiagnosisHandler, echo.Context, *httptest.ResponseRecorder, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockDiagnosisUC := mocks.NewMockDiagnosisUC(ctrl)
	handler := NewDiagnosisHandler(mockDiagnosisUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/predict", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user-1")

	return mockDiagnosisUC, handler, c, rec, ctrl
}

func TestPredict_Success(t *testing.T) {
	scan := pngBytes(t)
	body, contentType := multipartUpload(t, "file", "scan.png", scan)
	mockDiagnosisUC, handler, c, rec, ctrl := setupPredictTest(t, body, contentType)
	defer ctrl.Finish()

	mockDiagnosisUC.EXPECT().
		Classify(gomock.Any(), "user-1", "scan.png", scan).
		Return(&models.Prediction{
			Filename:       "scan.png",
			PredictedClass: "Glioma",
			Confidence:     0.93,
		}, nil)

	err := handler.Predict(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "scan.png", response["filename"])
	assert.Equal(t, "Glioma", response["predicted_class"])
	assert.InDelta(t, 0.93, response["confidence"], 1e-6)
}

func TestPredict_MissingFile(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.Close())

	_, handler, c, rec, ctrl := setupPredictTest(t, &body, writer.FormDataContentType())
	defer ctrl.Finish()

	err := handler.Predict(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Missing file upload", response["error"])
}

func TestPredict_UndecodableImage(t *testing.T) {
	body, contentType := multipartUpload(t, "file", "junk.bin", []byte("not an image"))
	mockDiagnosisUC, handler, c, rec, ctrl := setupPredictTest(t, body, contentType)
	defer ctrl.Finish()

	mockDiagnosisUC.EXPECT().
		Classify(gomock.Any(), "user-1", "junk.bin", []byte("not an image")).
		Return(nil, diagnosis.ErrDecode)

	err := handler.Predict(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "File is not a decodable image", response["error"])
}

func TestPredict_InternalError(t *testing.T) {
	scan := pngBytes(t)
	body, contentType := multipartUpload(t, "file", "scan.png", scan)
	mockDiagnosisUC, handler, c, rec, ctrl := setupPredictTest(t, body, contentType)
	defer ctrl.Finish()

	mockDiagnosisUC.EXPECT().
		Classify(gomock.Any(), "user-1", "scan.png", scan).
		Return(nil, errors.New("session run failed"))

	err := handler.Predict(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
