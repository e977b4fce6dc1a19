package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/handlers"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/middleware"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
)

func AIRoutes(router chi.Router, h *handlers.AIHandler) {
	router.Route("/ai", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.AnalyzeResumeRequest]()).Post("/analyze-resume", h.AnalyzeResumeHandler)
		r.With(middleware.ValidateRequest[*models.GenerateQuestionsRequest]()).Post("/generate-questions", h.GenerateQuestionsHandler)
		r.With(middleware.ValidateRequest[*models.EvaluateAnswerRequest]()).Post("/evaluate-answer", h.EvaluateAnswerHandler)
		r.With(middleware.ValidateRequest[*models.GenerateSummaryRequest]()).Post("/generate-summary", h.GenerateSummaryHandler)
	})
}
