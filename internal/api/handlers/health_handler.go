package handlers

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"
)

type HealthHandler struct {
	startedAt time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	writeJSON(w, http.StatusOK, "ok", map[string]any{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      time.Since(h.startedAt).Seconds(),
		"environment": env,
		"service":     "PDF Text Extractor API",
	})
}

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, "pong", map[string]any{
		"message":   "pong",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	writeJSON(w, http.StatusOK, "healthy", map[string]any{
		"status": "healthy",
		"checks": map[string]any{
			"api":        "ok",
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]string{
				"alloc":      fmt.Sprintf("%d MB", m.Alloc>>20),
				"totalAlloc": fmt.Sprintf("%d MB", m.TotalAlloc>>20),
				"sys":        fmt.Sprintf("%d MB", m.Sys>>20),
			},
		},
	})
}
