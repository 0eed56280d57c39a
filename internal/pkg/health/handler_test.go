package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInfo(t *testing.T) {
	assert.Equal(t, "development", DefaultBuildInfo.Version)
	assert.Equal(t, "unknown", DefaultBuildInfo.GitCommit)
	assert.Equal(t, "unknown", DefaultBuildInfo.BuildTime)
	assert.Equal(t, runtime.Version(), DefaultBuildInfo.GoVersion)
	assert.Empty(t, DefaultBuildInfo.ServiceName)
}

func TestNewPingHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewPingHandler("neuroscan")
	err := handler(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "neuroscan", info.ServiceName)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.False(t, info.ServerTime.IsZero())
}

func TestRegisterHealthEndpoints(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "neuroscan")

	for _, path := range []string{"/ping", "/health", "/healthz", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
