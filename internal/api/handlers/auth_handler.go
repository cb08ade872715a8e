package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lunovier/pdf-text-extractor/internal/config"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// IssueToken exchanges a valid x-api-key for a short-lived bearer token,
// so clients that cannot keep the raw key in every request can hold an
// expiring credential instead.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	apiKey := r.Header.Get("x-api-key")
	if apiKey == "" {
		writeError(w, http.StatusUnauthorized, "API key is required")
		return
	}

	valid := false
	for _, k := range h.cfg.APIKeys {
		if k == apiKey {
			valid = true
			break
		}
	}
	if !valid {
		writeError(w, http.StatusUnauthorized, "Invalid API key")
		return
	}

	now := time.Now()
	expiresAt := now.Add(h.cfg.TokenTTL)
	claims := jwt.MapClaims{
		"jti": uuid.NewString(),
		"sub": "api-client",
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not issue token")
		return
	}

	writeJSON(w, http.StatusOK, "Token issued", struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expiresAt"`
	}{signed, expiresAt})
}
