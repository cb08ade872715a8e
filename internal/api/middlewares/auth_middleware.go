package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lunovier/pdf-text-extractor/internal/config"
)

// APIKeyAuth guards the extraction routes. Requests authenticate with an
// x-api-key header checked against the configured key list, or with a
// Bearer JWT previously minted by the token endpoint.
func APIKeyAuth(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey := r.Header.Get("x-api-key"); apiKey != "" {
				if validAPIKey(cfg, apiKey) {
					next.ServeHTTP(w, r)
					return
				}
				unauthorized(w, "Invalid API key")
				return
			}

			if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				tokenStr := strings.TrimPrefix(auth, "Bearer ")
				claims := jwt.MapClaims{}
				token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
					return []byte(cfg.JWTSecret), nil
				}, jwt.WithValidMethods([]string{"HS256"}))
				if err != nil || !token.Valid {
					unauthorized(w, "Invalid token")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			unauthorized(w, "API key is required")
		})
	}
}

func validAPIKey(cfg *config.Config, key string) bool {
	for _, k := range cfg.APIKeys {
		if k == key {
			return true
		}
	}
	return false
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
