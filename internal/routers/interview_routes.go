package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/handlers"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/middleware"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
)

func InterviewRoutes(router chi.Router, h *handlers.InterviewHandler) {
	router.Route("/interviews", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.StartInterviewRequest]()).Post("/", h.StartHandler)
		r.Get("/", h.ListHandler)
		r.Get("/{id}", h.GetHandler)
		r.With(middleware.ValidateRequest[*models.SubmitAnswerRequest]()).Put("/{id}/answer", h.AnswerHandler)
		r.Post("/{id}/complete", h.CompleteHandler)
		r.Get("/{id}/session", h.SessionHandler)
	})
}
