package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*JWTManager, http.Handler, *uuid.UUID) {
	t.Helper()

	mgr, err := NewJWTManager("super-secret", time.Hour)
	require.NoError(t, err)

	var seen uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, ok := SubjectFromContext(r.Context())
		require.True(t, ok)
		seen = subject
		w.WriteHeader(http.StatusOK)
	})

	return mgr, Middleware(mgr)(next), &seen
}

func TestMiddleware_ValidToken(t *testing.T) {
	mgr, h, seen := newTestHandler(t)
	subject := uuid.New()

	tok, err := mgr.Issue(subject, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/organisations", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, subject, *seen)
}

func TestMiddleware_Rejections(t *testing.T) {
	mgr, h, _ := newTestHandler(t)

	expired, err := mgr.Issue(uuid.New(), -1*time.Second)
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"missing header", "", "missing authorization header"},
		{"wrong scheme", "Basic abc", "unsupported authorization scheme"},
		{"garbage token", "Bearer not.a.jwt", "invalid or expired token"},
		{"expired token", "Bearer " + expired, "invalid or expired token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/organisations", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"status":"Bad request","message":"`+tt.message+`","statusCode":401}`, rec.Body.String())
		})
	}
}
