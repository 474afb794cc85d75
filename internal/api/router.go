package api

import (
	"net/http"
	"storyrun-service/internal/api/handlers"
	"storyrun-service/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type RouterConfig struct {
	// CORSOrigin is the single browser origin allowed to call the API.
	CORSOrigin     string
	MaxUploadBytes int64
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(runs *services.RunService, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           600,
	}))

	runHandler := &handlers.RunHandler{
		Runs:           runs,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/", handlers.Root)
	r.Get("/health", handlers.Health)
	r.Get("/run", runHandler.Get)
	r.Post("/run", runHandler.Submit)

	return r
}
