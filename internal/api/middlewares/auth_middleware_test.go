package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunovier/pdf-text-extractor/internal/config"
)

func authedConfig() *config.Config {
	return &config.Config{
		APIKeys:   []string{"key-one", "key-two"},
		JWTSecret: "test-secret",
	}
}

func runGuard(t *testing.T, cfg *config.Config, decorate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/pdf/extract-text", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	APIKeyAuth(cfg)(next).ServeHTTP(rec, req)

	if rec.Code == http.StatusOK {
		assert.True(t, called)
	} else {
		assert.False(t, called)
	}
	return rec
}

func TestAPIKeyAuth_ValidKey(t *testing.T) {
	rec := runGuard(t, authedConfig(), func(r *http.Request) {
		r.Header.Set("x-api-key", "key-two")
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyAuth_InvalidKey(t *testing.T) {
	rec := runGuard(t, authedConfig(), func(r *http.Request) {
		r.Header.Set("x-api-key", "wrong")
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid API key")
}

func TestAPIKeyAuth_MissingCredentials(t *testing.T) {
	rec := runGuard(t, authedConfig(), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "API key is required")
}

func TestAPIKeyAuth_ValidBearerToken(t *testing.T) {
	cfg := authedConfig()
	claims := jwt.MapClaims{
		"sub": "api-client",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	rec := runGuard(t, cfg, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+signed)
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyAuth_ExpiredBearerToken(t *testing.T) {
	cfg := authedConfig()
	claims := jwt.MapClaims{
		"sub": "api-client",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	rec := runGuard(t, cfg, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+signed)
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyAuth_RejectsNonHS256Algorithm(t *testing.T) {
	cfg := authedConfig()
	// Signed with the right secret but a different HMAC variant; only
	// HS256 is accepted.
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.MapClaims{
		"sub": "api-client",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	rec := runGuard(t, cfg, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+signed)
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyAuth_TokenSignedWithWrongSecret(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	rec := runGuard(t, authedConfig(), func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+signed)
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
