package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/neuroscan-id/neuroscan/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newCaptureLogger(buf *bytes.Buffer) *logger.ZapLogger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	zl := zap.New(core)
	return &logger.ZapLogger{Logger: zl}
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		panicValue   interface{}
		expectInLogs []string
	}{
		{
			name:       "string panic",
			panicValue: "something broke",
			expectInLogs: []string{
				"something broke",
				"stack_trace",
				"Panic recovered during request processing",
			},
		},
		{
			name:       "error panic",
			panicValue: errors.New("boom"),
			expectInLogs: []string{
				"boom",
				"panic_type",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuffer bytes.Buffer
			mw := PanicRecoveryWithZapMiddleware(newCaptureLogger(&logBuffer))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/panic", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := mw(func(c echo.Context) error {
				panic(tt.panicValue)
			})

			err := handler(c)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "Internal Server Error", response["error"])

			logs := logBuffer.String()
			for _, want := range tt.expectInLogs {
				assert.Contains(t, logs, want)
			}
		})
	}
}

func TestPanicRecovery_NoPanicPassesThrough(t *testing.T) {
	var logBuffer bytes.Buffer
	mw := PanicRecoveryWithZapMiddleware(newCaptureLogger(&logBuffer))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	err := handler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, logBuffer.String())
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()

	t.Run("generates an ID when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := RequestIDMiddleware()(func(c echo.Context) error {
			assert.NotEmpty(t, c.Get("request_id"))
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, handler(c))
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("reuses a client-supplied ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "client-id-42")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := RequestIDMiddleware()(func(c echo.Context) error {
			assert.Equal(t, "client-id-42", c.Get("request_id"))
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, "client-id-42", rec.Header().Get("X-Request-ID"))
	})
}
