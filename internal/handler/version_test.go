package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleVersion(t *testing.T) {
	t.Setenv("VERSION", "2.1.0")

	w := httptest.NewRecorder()
	HandleVersion().ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var info VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "2.1.0", info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestBuildVersionInfo_LdflagsWin(t *testing.T) {
	prev := Version
	Version = "3.0.0"
	t.Cleanup(func() { Version = prev })
	t.Setenv("VERSION", "2.1.0")

	assert.Equal(t, "3.0.0", buildVersionInfo().Version)
}
