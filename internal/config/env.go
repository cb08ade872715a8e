package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	APIKeys            []string
	JWTSecret          string
	TokenTTL           time.Duration
	AIAPIKey           string
	GenModel           string
	MaxFileSizeMB      int
	RateLimitPerMinute int
	// MetadataConcurrency caps parallel per-page enrichment calls.
	// 1 means strictly sequential.
	MetadataConcurrency int
	InfoTextLimit       int
	PageTextLimit       int
	DocconvFallback     bool
}

// LoadConfig loads the environment variables and returns config
func LoadConfig() *Config {

	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		APIKeys:             getEnvList("API_KEYS", []string{"default-key"}),
		JWTSecret:           getEnv("JWT_SECRET", "fallback-secret"),
		TokenTTL:            time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 60)) * time.Minute,
		AIAPIKey:            getEnv("GEMINI_API_KEY", ""),
		GenModel:            getEnv("GEN_MODEL", "gemini-1.5-flash"),
		MaxFileSizeMB:       getEnvInt("MAX_FILE_SIZE_MB", 50),
		RateLimitPerMinute:  getEnvInt("RATE_LIMIT_PER_MINUTE", 5),
		MetadataConcurrency: getEnvInt("METADATA_CONCURRENCY", 1),
		InfoTextLimit:       getEnvInt("INFO_TEXT_LIMIT", 4000),
		PageTextLimit:       getEnvInt("PAGE_TEXT_LIMIT", 2000),
		DocconvFallback:     getEnvBool("DOCCONV_FALLBACK", false),
	}

	if cfg.AIAPIKey == "" {
		log.Println("GEMINI_API_KEY not set; metadata generation will be disabled")
	}

	return cfg
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("WARN: %s=%q not an int, using default %d", key, v, def)
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("WARN: %s=%q not a bool, using default %t", key, v, def)
		return def
	}
	return b
}

// getEnvList reads a comma-separated environment variable.
func getEnvList(key string, def []string) []string {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
