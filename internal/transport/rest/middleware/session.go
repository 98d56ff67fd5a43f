package middleware

import (
	"context"
	"net/http"
	"strings"

	"lexdraft/internal/service"

	"github.com/gorilla/mux"
)

type contextKey string

// SessionIDKey carries the authenticated flow session id
const SessionIDKey contextKey = "sessionId"

// SessionMiddleware validates flow-session JWTs
type SessionMiddleware struct {
	authSvc *service.AuthService
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(authSvc *service.AuthService) *SessionMiddleware {
	return &SessionMiddleware{authSvc: authSvc}
}

// RequireSession validates the bearer token and checks it matches the
// flow id in the route
func (m *SessionMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateSessionToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired session token"}`, http.StatusUnauthorized)
			return
		}

		if flowID := mux.Vars(r)["flowId"]; flowID != "" && flowID != claims.SessionID {
			http.Error(w, `{"error":"token does not match this flow"}`, http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, claims.SessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID extracts the session id from context
func GetSessionID(ctx context.Context) string {
	if v := ctx.Value(SessionIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
