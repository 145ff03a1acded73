package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/orgdesk/backend/internal/apierrors"
)

// contextKey is an unexported type used for context keys to avoid collisions.
type contextKey int

const subjectContextKey contextKey = iota

// Middleware returns an HTTP middleware that validates the bearer token from
// the Authorization header and injects the authenticated subject into the
// request context.
func Middleware(jwtMgr *JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apierrors.NewUnauthorized("missing authorization header").Write(w)
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				apierrors.NewUnauthorized("unsupported authorization scheme").Write(w)
				return
			}

			subject, err := jwtMgr.Verify(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				apierrors.NewUnauthorized("invalid or expired token").Write(w)
				return
			}

			ctx := context.WithValue(r.Context(), subjectContextKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SubjectFromContext extracts the authenticated user ID stored in the
// context by the auth middleware.
func SubjectFromContext(ctx context.Context) (uuid.UUID, bool) {
	subject, ok := ctx.Value(subjectContextKey).(uuid.UUID)
	return subject, ok
}
