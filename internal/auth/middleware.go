package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/taskflow-api/taskflow/internal/apperr"
	"github.com/taskflow-api/taskflow/internal/httputil"
	"github.com/taskflow-api/taskflow/internal/token"
)

// Identity is the authenticated caller, as proven by the session token.
// It is the only thing downstream handlers learn about the caller; the
// user record itself is not re-read, so a token stays good until expiry
// even if the user row changed after issuance.
type Identity struct {
	UserID int64
	Email  string
}

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const identityContextKey contextKey = "identity"

// Middleware handles authentication for protected routes
type Middleware struct {
	tokens token.Service
	ew     *httputil.ErrorWriter
}

func NewMiddleware(tokens token.Service, ew *httputil.ErrorWriter) *Middleware {
	return &Middleware{tokens: tokens, ew: ew}
}

// RequireAuth validates the bearer token and attaches the caller's
// Identity to the request context. Verification failures are forwarded to
// the error translator so expired, invalid and not-yet-valid tokens map to
// their distinct status codes.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			m.ew.WriteError(w, r, apperr.Unauthorized("Authentication token was not provided"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			m.ew.WriteError(w, r, apperr.Unauthorized("Missing or malformed token"))
			return
		}

		claims, err := m.tokens.Verify(parts[1])
		if err != nil {
			m.ew.WriteError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext extracts the authenticated identity from the request
// context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(Identity)
	return identity, ok
}

// ContextWithIdentity returns a context carrying the given identity.
// Exported for handler tests that bypass the middleware.
func ContextWithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}
