package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Scavenger_Go/internal/database"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

func TestHandleHealthz(t *testing.T) {
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{"store answers", nil, http.StatusOK, `"status":"ok"`},
		{"ping fails", assert.AnError, http.StatusServiceUnavailable, `"message":"database connection failed"`},
		{"ping times out", context.DeadlineExceeded, http.StatusServiceUnavailable, `"status":"unavailable"`},
		{"connection refused", errors.New("connection refused"), http.StatusServiceUnavailable, `"status":"unavailable"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := &MockDBPool{}
			mockDB.On("Ping", mock.Anything).Return(tt.pingErr)
			w := httptest.NewRecorder()

			HandleReadyz(mockDB).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotContains(t, w.Body.String(), "refused", "driver errors stay in the logs")
			mockDB.AssertExpectations(t)
		})
	}

	t.Run("in-memory store is always ready", func(t *testing.T) {
		w := httptest.NewRecorder()

		HandleReadyz(nil).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("sqlite store open then closed", func(t *testing.T) {
		db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "ready.db"))
		require.NoError(t, err)
		pool := database.WrapSQL(db)
		handler := HandleReadyz(pool)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		pool.Close()
		w = httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
