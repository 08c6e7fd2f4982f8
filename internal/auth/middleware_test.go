package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow-api/taskflow/internal/auth"
	"github.com/taskflow-api/taskflow/internal/httputil"
	"github.com/taskflow-api/taskflow/internal/logging"
	"github.com/taskflow-api/taskflow/internal/token"
)

func newMiddlewareChain(tokens token.Service) http.Handler {
	ew := httputil.NewErrorWriter(logging.NewLogger(true), false)
	mw := auth.NewMiddleware(tokens, ew)

	return mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		httputil.Success(w, http.StatusOK, "", map[string]any{
			"id":    identity.UserID,
			"email": identity.Email,
		})
	}))
}

func TestRequireAuth(t *testing.T) {
	tokens := token.NewJWTService([]byte("test-secret"), time.Hour)

	validToken, err := tokens.Issue(7, "ana@x.com")
	require.NoError(t, err)

	expiredToken, err := token.NewJWTService([]byte("test-secret"), -time.Minute).Issue(7, "ana@x.com")
	require.NoError(t, err)

	foreignToken, err := token.NewJWTService([]byte("other-secret"), time.Hour).Issue(7, "ana@x.com")
	require.NoError(t, err)

	tests := []struct {
		name        string
		authHeader  string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing header",
			authHeader:  "",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authentication token was not provided",
		},
		{
			name:        "bearer with empty token",
			authHeader:  "Bearer ",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Missing or malformed token",
		},
		{
			name:        "wrong scheme",
			authHeader:  "Basic abc123",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Missing or malformed token",
		},
		{
			name:        "expired token",
			authHeader:  "Bearer " + expiredToken,
			wantStatus:  http.StatusForbidden,
			wantMessage: "Token has expired",
		},
		{
			name:        "token signed with another key",
			authHeader:  "Bearer " + foreignToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token",
		},
		{
			name:        "garbage token",
			authHeader:  "Bearer garbage",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token",
		},
		{
			name:       "valid token",
			authHeader: "Bearer " + validToken,
			wantStatus: http.StatusOK,
		},
	}

	handler := newMiddlewareChain(tokens)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			if tt.wantMessage != "" {
				assert.Equal(t, "error", body["status"])
				assert.Equal(t, tt.wantMessage, body["message"])
			} else {
				assert.Equal(t, "success", body["status"])
				data := body["data"].(map[string]any)
				assert.Equal(t, float64(7), data["id"])
				assert.Equal(t, "ana@x.com", data["email"])
			}
		})
	}
}
