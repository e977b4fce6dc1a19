package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/middleware"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/services"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/utils"
)

// InterviewHandler exposes the interview lifecycle over HTTP.
type InterviewHandler struct {
	service *services.InterviewService
	logger  *zap.Logger
}

func NewInterviewHandler(service *services.InterviewService, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{service: service, logger: logger}
}

// StartHandler creates a candidate plus session. 409 with the existing
// candidate id when the email is already taken.
func (h *InterviewHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.StartInterviewRequest](r)

	resp, err := h.service.Start(r.Context(), req)
	if err != nil {
		var dup *services.DuplicateEmailError
		if errors.As(err, &dup) {
			utils.JSON(w, http.StatusConflict, models.ConflictResponse{
				Code:        "email_exists",
				Message:     "Candidate with this email already exists",
				CandidateID: dup.CandidateID,
			})
			return
		}
		h.internalError(w, "Failed to start interview", err)
		return
	}

	utils.JSON(w, http.StatusCreated, resp)
}

// ListHandler serves the interviewer dashboard listing.
func (h *InterviewHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		h.internalError(w, "Failed to fetch candidates", err)
		return
	}
	utils.JSON(w, http.StatusOK, resp)
}

// GetHandler serves one full candidate record.
func (h *InterviewHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	candidate, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.serviceError(w, "Failed to fetch candidate", err)
		return
	}
	utils.JSON(w, http.StatusOK, candidate)
}

// AnswerHandler scores and stores a single answer.
func (h *InterviewHandler) AnswerHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SubmitAnswerRequest](r)

	resp, err := h.service.SubmitAnswer(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.serviceError(w, "Failed to save answer", err)
		return
	}
	utils.JSON(w, http.StatusOK, resp)
}

// CompleteHandler finalizes an interview.
func (h *InterviewHandler) CompleteHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Complete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.serviceError(w, "Failed to complete interview", err)
		return
	}
	utils.JSON(w, http.StatusOK, resp)
}

// SessionHandler serves the candidate's progress tracker.
func (h *InterviewHandler) SessionHandler(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.serviceError(w, "Failed to fetch session", err)
		return
	}
	utils.JSON(w, http.StatusOK, session)
}

// serviceError maps orchestrator errors onto the HTTP error taxonomy.
func (h *InterviewHandler) serviceError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, services.ErrCandidateNotFound):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "candidate_not_found",
			Message: "Candidate not found",
		})
	case errors.Is(err, services.ErrQuestionNotFound):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "question_not_found",
			Message: "Question not found",
		})
	case errors.Is(err, services.ErrSessionNotFound):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "Session not found",
		})
	default:
		h.internalError(w, message, err)
	}
}

func (h *InterviewHandler) internalError(w http.ResponseWriter, message string, err error) {
	h.logger.Error(message, zap.Error(err))
	utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Code:    "internal_error",
		Message: message,
	})
}
