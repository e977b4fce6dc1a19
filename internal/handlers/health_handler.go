package handlers

import (
	"context"
	"net/http"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/ai"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/utils"
)

// StorageChecker reports whether the backing store is reachable.
// Nil means an in-process store that cannot fail.
type StorageChecker interface {
	Ping(ctx context.Context) error
}

type ReadinessCheck struct {
	Status  string `json:"status"` // "ok" | "failed"
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status  string                    `json:"status"` // "ready" | "not_ready"
	Service string                    `json:"service"`
	Checks  map[string]ReadinessCheck `json:"checks"`
}

type HealthHandler struct {
	bank    *ai.QuestionBank
	storage StorageChecker
}

func NewHealthHandler(bank *ai.QuestionBank, storage StorageChecker) *HealthHandler {
	return &HealthHandler{bank: bank, storage: storage}
}

func (h *HealthHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "interview",
		"version": "1.0.0",
	})
}

func (h *HealthHandler) ReadyzHandler(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]ReadinessCheck)
	allChecksPass := true

	if h.bank == nil || h.bank.RoleCount() == 0 {
		checks["question_bank"] = ReadinessCheck{
			Status:  "failed",
			Message: "Question bank not loaded",
		}
		allChecksPass = false
	} else {
		checks["question_bank"] = ReadinessCheck{Status: "ok"}
	}

	if h.storage == nil {
		checks["storage"] = ReadinessCheck{Status: "ok", Message: "in-memory store"}
	} else if err := h.storage.Ping(r.Context()); err != nil {
		checks["storage"] = ReadinessCheck{Status: "failed", Message: err.Error()}
		allChecksPass = false
	} else {
		checks["storage"] = ReadinessCheck{Status: "ok"}
	}

	response := ReadinessResponse{Service: "interview", Checks: checks}
	if allChecksPass {
		response.Status = "ready"
		utils.JSON(w, http.StatusOK, response)
	} else {
		response.Status = "not_ready"
		utils.JSON(w, http.StatusServiceUnavailable, response)
	}
}
