package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/handlers"
)

func HealthRoutes(router chi.Router, h *handlers.HealthHandler) {
	router.Get("/health", h.HealthHandler)
	router.Get("/healthz", h.HealthHandler)
	router.Get("/readyz", h.ReadyzHandler)
}
