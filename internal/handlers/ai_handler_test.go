package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/ai"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/middleware"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
)

func newAIRouter(t *testing.T) chi.Router {
	t.Helper()
	bank, err := ai.NewQuestionBank()
	require.NoError(t, err)
	h := NewAIHandler(bank, zap.NewNop())

	router := chi.NewRouter()
	router.Route("/ai", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.AnalyzeResumeRequest]()).Post("/analyze-resume", h.AnalyzeResumeHandler)
		r.With(middleware.ValidateRequest[*models.GenerateQuestionsRequest]()).Post("/generate-questions", h.GenerateQuestionsHandler)
		r.With(middleware.ValidateRequest[*models.EvaluateAnswerRequest]()).Post("/evaluate-answer", h.EvaluateAnswerHandler)
		r.With(middleware.ValidateRequest[*models.GenerateSummaryRequest]()).Post("/generate-summary", h.GenerateSummaryHandler)
	})
	return router
}

func postAI(t *testing.T, router chi.Router, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeResumeEndpoint(t *testing.T) {
	router := newAIRouter(t)

	rec := postAI(t, router, "/ai/analyze-resume", `{"resumeText":"John Doe\njohn.doe@email.com\nreact and css work"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis models.ResumeAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, "john.doe@email.com", analysis.Email)
	assert.Equal(t, "John Doe", analysis.Name)
	assert.Equal(t, "Frontend Developer", analysis.JobRole)
}

func TestAnalyzeResumeMissingText(t *testing.T) {
	router := newAIRouter(t)

	rec := postAI(t, router, "/ai/analyze-resume", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "missing_resume_text", errResp.Code)
}

func TestGenerateQuestionsEndpoint(t *testing.T) {
	router := newAIRouter(t)

	rec := postAI(t, router, "/ai/generate-questions", `{"jobRole":"Frontend Developer","difficulty":"Easy"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.QuestionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	for _, q := range resp.Items {
		assert.Equal(t, models.Easy, q.Difficulty)
	}
}

func TestGenerateQuestionsInvalidDifficulty(t *testing.T) {
	router := newAIRouter(t)

	rec := postAI(t, router, "/ai/generate-questions", `{"jobRole":"Frontend Developer","difficulty":"impossible"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "invalid_difficulty", errResp.Code)
}

func TestEvaluateAnswerEndpoint(t *testing.T) {
	router := newAIRouter(t)

	rec := postAI(t, router, "/ai/evaluate-answer", `{
		"question": "Explain closures.",
		"answer": "A closure works because the inner scope keeps a reference, for example inside callbacks.",
		"difficulty": "Medium"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var evaluation models.AnswerEvaluation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &evaluation))
	assert.Greater(t, evaluation.Score, 0.0)
	assert.LessOrEqual(t, evaluation.Score, 10.0)
	assert.NotEmpty(t, evaluation.Feedback)
}

func TestEvaluateAnswerMissingFields(t *testing.T) {
	router := newAIRouter(t)

	rec := postAI(t, router, "/ai/evaluate-answer", `{"question":"Explain closures."}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateSummaryEndpoint(t *testing.T) {
	router := newAIRouter(t)

	rec := postAI(t, router, "/ai/generate-summary", `{
		"answers": [
			{"questionId": "fe-1", "text": "answer one", "score": 9},
			{"questionId": "fe-2", "text": "answer two", "score": 8}
		],
		"candidateInfo": {"name": "John Doe", "jobRole": "Frontend Developer"}
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary models.InterviewSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 8.5, summary.OverallScore)
	assert.Equal(t, models.HighlyRecommended, summary.Recommendation)
	assert.Contains(t, summary.Feedback, "John Doe")
}

func TestGenerateSummaryRequiresAnswers(t *testing.T) {
	router := newAIRouter(t)

	rec := postAI(t, router, "/ai/generate-summary", `{"answers": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "missing_answers", errResp.Code)
}
