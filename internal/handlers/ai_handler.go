package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/ai"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/middleware"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/utils"
)

// AIHandler exposes the stateless heuristic functions directly, so the
// client can analyze a resume or preview questions before an interview
// record exists.
type AIHandler struct {
	bank   *ai.QuestionBank
	logger *zap.Logger
}

func NewAIHandler(bank *ai.QuestionBank, logger *zap.Logger) *AIHandler {
	return &AIHandler{bank: bank, logger: logger}
}

func (h *AIHandler) AnalyzeResumeHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.AnalyzeResumeRequest](r)

	analysis := ai.AnalyzeResume(req.ResumeText)

	h.logger.Info("resume analyzed",
		zap.Int("resume_length", len(req.ResumeText)),
		zap.String("job_role", analysis.JobRole))

	utils.JSON(w, http.StatusOK, analysis)
}

func (h *AIHandler) GenerateQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.GenerateQuestionsRequest](r)

	questions := h.bank.Generate(req.JobRole, req.Difficulty)

	h.logger.Info("questions generated",
		zap.String("job_role", req.JobRole),
		zap.String("difficulty", req.Difficulty),
		zap.Int("count", len(questions)))

	utils.JSON(w, http.StatusOK, models.QuestionsResponse{
		Total: len(questions),
		Items: questions,
	})
}

func (h *AIHandler) EvaluateAnswerHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.EvaluateAnswerRequest](r)

	evaluation := ai.EvaluateAnswer(req.Question, req.Answer, models.Difficulty(req.Difficulty))

	utils.JSON(w, http.StatusOK, evaluation)
}

func (h *AIHandler) GenerateSummaryHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.GenerateSummaryRequest](r)

	summary := ai.GenerateSummary(req.Answers, req.CandidateInfo)

	utils.JSON(w, http.StatusOK, summary)
}
