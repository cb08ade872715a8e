package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/lunovier/pdf-text-extractor/internal/api/handlers"
	appMiddleware "github.com/lunovier/pdf-text-extractor/internal/api/middlewares"
	"github.com/lunovier/pdf-text-extractor/internal/config"
)

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
}

// NewServer builds and wires all routes.
func NewServer(cfg *config.Config, extractor handlers.Extractor) *Server {
	pdfHandler := handlers.NewPdfHandler(extractor, cfg)
	authHandler := handlers.NewAuthHandler(cfg)
	healthHandler := handlers.NewHealthHandler()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "x-api-key"},
		AllowCredentials: false,
	}))

	r.Route("/health", func(health chi.Router) {
		health.Get("/", healthHandler.Health)
		health.Get("/ping", healthHandler.Ping)
		health.Get("/status", healthHandler.Status)
	})

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/token", authHandler.IssueToken)

		// protected endpoints
		api.Group(func(protected chi.Router) {
			protected.Use(appMiddleware.APIKeyAuth(cfg))
			protected.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
			protected.Post("/pdf/extract-text", pdfHandler.ExtractText)
			protected.Post("/pdf/extract-info", pdfHandler.ExtractInfo)
			protected.Post("/pdf/extract-pages", pdfHandler.ExtractPages)
		})
	})

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	return &Server{httpServer: httpSrv}
}

// Start runs the HTTP server.
func (s *Server) Start() {
	log.Printf("HTTP server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down HTTP server...")
	return s.httpServer.Shutdown(ctx)
}
