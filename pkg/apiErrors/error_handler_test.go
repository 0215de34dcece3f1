package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{code: ErrInvalidFormat, status: http.StatusBadRequest},
		{code: ErrRateLimited, status: http.StatusTooManyRequests},
		{code: ErrInvalidToken, status: http.StatusUnauthorized},
		{code: ErrSnapshotsDisabled, status: http.StatusServiceUnavailable},
		{code: "UNKNOWN", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "boom", map[string]string{"field": "seed"})

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "boom", body.Message)
		})
	}
}
