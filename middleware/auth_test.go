package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"technocy-server/utils"
)

func signToken(t *testing.T, email string, expiresAt time.Time) string {
	t.Helper()
	claims := &utils.Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expiresAt.Unix(),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(utils.JwtKey)
	require.NoError(t, err)
	return tokenString
}

func TestTokenVerify(t *testing.T) {
	utils.JwtKey = []byte("test-secret")

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic abc123",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not.a.token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + signToken(t, "alice@example.com", time.Now().Add(-time.Minute)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			authHeader: "Bearer " + signToken(t, "alice@example.com", time.Now().Add(time.Hour)),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				claims, ok := r.Context().Value(UserContextKey).(*utils.Claims)
				require.True(t, ok)
				assert.Equal(t, "alice@example.com", claims.Email)
			})

			req := httptest.NewRequest("GET", "/users", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			TokenVerify(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, handlerCalled)

			if tt.wantStatus == http.StatusUnauthorized {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "Unauthorized-Access", body["message"])
			}
		})
	}
}

func TestAdminVerify(t *testing.T) {
	utils.JwtKey = []byte("test-secret")

	tests := []struct {
		name       string
		withClaims bool
		isAdmin    RoleChecker
		wantStatus int
	}{
		{
			name:       "no claims in context",
			withClaims: false,
			isAdmin: func(ctx context.Context, email string) (bool, error) {
				return true, nil
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "admin role",
			withClaims: true,
			isAdmin: func(ctx context.Context, email string) (bool, error) {
				return email == "alice@example.com", nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "ordinary user",
			withClaims: true,
			isAdmin: func(ctx context.Context, email string) (bool, error) {
				return false, nil
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "role lookup failure",
			withClaims: true,
			isAdmin: func(ctx context.Context, email string) (bool, error) {
				return false, errors.New("connection reset")
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
			})

			req := httptest.NewRequest("GET", "/users", nil)
			if tt.withClaims {
				claims := &utils.Claims{Email: "alice@example.com"}
				req = req.WithContext(context.WithValue(req.Context(), UserContextKey, claims))
			}
			rec := httptest.NewRecorder()

			AdminVerify(tt.isAdmin)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, handlerCalled)

			if tt.wantStatus == http.StatusForbidden {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "Forbidden-Access", body["message"])
			}
		})
	}
}

func TestAdminVerifyQueriesRoleEachRequest(t *testing.T) {
	utils.JwtKey = []byte("test-secret")

	lookups := 0
	isAdmin := RoleChecker(func(ctx context.Context, email string) (bool, error) {
		lookups++
		return true, nil
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	guard := AdminVerify(isAdmin)(next)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/users", nil)
		claims := &utils.Claims{Email: "alice@example.com"}
		req = req.WithContext(context.WithValue(req.Context(), UserContextKey, claims))
		guard.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 3, lookups)
}
