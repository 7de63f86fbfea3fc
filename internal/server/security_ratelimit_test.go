package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter(10, time.Minute)
	handler := RateLimitMiddleware(nil, limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/v1/scavengers", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// a different client is unaffected
	other := httptest.NewRequest("GET", "/api/v1/scavengers", nil)
	other.RemoteAddr = "10.0.0.7:4321"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_WindowResets(t *testing.T) {
	limiter := NewRateLimiter(1, 20*time.Millisecond)

	assert.True(t, limiter.RecordRequest("1.2.3.4"))
	assert.False(t, limiter.RecordRequest("1.2.3.4"))

	time.Sleep(40 * time.Millisecond)
	assert.True(t, limiter.RecordRequest("1.2.3.4"))
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	req.Header.Set(HeaderForwardedFor, "203.0.113.9, 198.51.100.2")

	assert.Equal(t, "10.0.0.1", extractIP(req, nil), "untrusted proxies are ignored")
	assert.Equal(t, "198.51.100.2", extractIP(req, []string{"10.0.0.1"}))
}
