// Package services holds the interview orchestrator, the only stateful
// component: it sequences resume analysis, question generation, answer
// scoring and summary synthesis against the persisted records.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/ai"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/metrics"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/repositories"
)

// initial per-interview time budget in seconds
const initialTimeRemaining = 3600

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrSessionNotFound   = errors.New("session not found")
)

// DuplicateEmailError reports an email conflict together with the
// candidate already holding that email.
type DuplicateEmailError struct {
	CandidateID string
}

func (e *DuplicateEmailError) Error() string {
	return "candidate with this email already exists"
}

type InterviewService struct {
	candidates repositories.CandidateRepository
	sessions   repositories.SessionRepository
	bank       *ai.QuestionBank
	logger     *zap.Logger
}

func NewInterviewService(
	candidates repositories.CandidateRepository,
	sessions repositories.SessionRepository,
	bank *ai.QuestionBank,
	logger *zap.Logger,
) *InterviewService {
	return &InterviewService{
		candidates: candidates,
		sessions:   sessions,
		bank:       bank,
		logger:     logger,
	}
}

// Start creates a candidate with a freshly generated question list and an
// active session. Emails are unique: a second interview for a known email
// is rejected with the existing candidate id and no new record.
func (s *InterviewService) Start(ctx context.Context, req *models.StartInterviewRequest) (*models.StartInterviewResponse, error) {
	existing, err := s.candidates.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, &DuplicateEmailError{CandidateID: existing.ID}
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing candidate: %w", err)
	}

	questions := s.bank.Generate(req.JobRole, "")
	now := time.Now().UTC()

	candidate := &models.Candidate{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		JobRole:    req.JobRole,
		ResumeText: req.ResumeText,
		Questions:  questions,
		Answers:    []models.Answer{},
		Status:     models.StatusInProgress,
		CreatedAt:  now,
	}
	candidate.RecomputeDerived()

	if err := s.candidates.Create(ctx, candidate); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			// lost a race with a concurrent start for the same email
			if existing, lookupErr := s.candidates.GetByEmail(ctx, req.Email); lookupErr == nil {
				return nil, &DuplicateEmailError{CandidateID: existing.ID}
			}
			return nil, &DuplicateEmailError{}
		}
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	session := &models.InterviewSession{
		ID:                   uuid.NewString(),
		CandidateID:          candidate.ID,
		CurrentQuestionIndex: 0,
		IsActive:             true,
		StartedAt:            now,
		LastActivityAt:       now,
		TimeRemaining:        initialTimeRemaining,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("interview started",
		zap.String("candidate_id", candidate.ID),
		zap.String("job_role", candidate.JobRole),
		zap.Int("questions", len(questions)))

	return &models.StartInterviewResponse{
		CandidateID:   candidate.ID,
		SessionID:     session.ID,
		QuestionCount: len(questions),
	}, nil
}

// List returns the dashboard projection, newest candidates first.
func (s *InterviewService) List(ctx context.Context) (*models.CandidatesResponse, error) {
	candidates, err := s.candidates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	items := make([]models.CandidateSummary, 0, len(candidates))
	for i := range candidates {
		items = append(items, candidates[i].Summary())
	}
	return &models.CandidatesResponse{Total: len(items), Items: items}, nil
}

// Get returns the full candidate record.
func (s *InterviewService) Get(ctx context.Context, id string) (*models.Candidate, error) {
	candidate, err := s.candidates.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrCandidateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate: %w", err)
	}
	return candidate, nil
}

// SubmitAnswer scores and stores one answer. The target question resolves
// by index when given, otherwise by id; resubmitting for the same question
// replaces the stored answer. Question progression is a client concern,
// observed through the answered count.
func (s *InterviewService) SubmitAnswer(ctx context.Context, candidateID string, req *models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error) {
	candidate, err := s.Get(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	var question *models.Question
	if req.QuestionIndex != nil {
		if *req.QuestionIndex < len(candidate.Questions) {
			question = &candidate.Questions[*req.QuestionIndex]
		}
	} else {
		question = candidate.QuestionByID(req.QuestionID)
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	evaluation := ai.EvaluateAnswer(question.Text, req.Answer, question.Difficulty)
	now := time.Now().UTC()

	candidate.UpsertAnswer(models.Answer{
		QuestionID: question.ID,
		Text:       req.Answer,
		Score:      evaluation.Score,
		Feedback:   evaluation.Feedback,
		TimeSpent:  req.TimeSpent,
		AnsweredAt: now,
	})
	candidate.RecomputeDerived()

	if err := s.candidates.Update(ctx, candidate); err != nil {
		return nil, fmt.Errorf("failed to save answer: %w", err)
	}

	s.touchSession(ctx, candidateID, now)
	metrics.ObserveAnswerScore(evaluation.Score)

	s.logger.Info("answer saved",
		zap.String("candidate_id", candidateID),
		zap.String("question_id", question.ID),
		zap.Float64("score", evaluation.Score))

	return &models.SubmitAnswerResponse{
		Score:             evaluation.Score,
		Feedback:          evaluation.Feedback,
		QuestionsAnswered: len(candidate.Answers),
		TotalQuestions:    len(candidate.Questions),
	}, nil
}

// Complete synthesizes the final summary, finalizes the candidate record
// and deactivates the session. Calling it again recomputes an equivalent
// summary from the stored answers and overwrites it.
func (s *InterviewService) Complete(ctx context.Context, candidateID string) (*models.CompleteInterviewResponse, error) {
	candidate, err := s.Get(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	summary := ai.GenerateSummary(candidate.Answers, &models.CandidateInfo{
		Name:    candidate.Name,
		JobRole: candidate.JobRole,
		Email:   candidate.Email,
	})

	now := time.Now().UTC()
	candidate.FinalScore = summary.OverallScore
	candidate.FinalFeedback = summary.Feedback
	candidate.Strengths = summary.Strengths
	candidate.AreasForImprovement = summary.AreasForImprovement
	candidate.Recommendation = summary.Recommendation
	candidate.Status = models.StatusCompleted
	candidate.CompletedAt = &now
	candidate.RecomputeDerived()

	if err := s.candidates.Update(ctx, candidate); err != nil {
		return nil, fmt.Errorf("failed to finalize candidate: %w", err)
	}

	if session, err := s.sessions.GetByCandidateID(ctx, candidateID); err == nil {
		session.Complete(now)
		if err := s.sessions.Update(ctx, session); err != nil {
			s.logger.Warn("failed to deactivate session",
				zap.String("candidate_id", candidateID), zap.Error(err))
		}
	}

	s.logger.Info("interview completed",
		zap.String("candidate_id", candidateID),
		zap.Float64("final_score", summary.OverallScore),
		zap.String("recommendation", summary.Recommendation))

	return &models.CompleteInterviewResponse{
		FinalScore:          summary.OverallScore,
		Feedback:            summary.Feedback,
		Recommendation:      summary.Recommendation,
		Strengths:           summary.Strengths,
		AreasForImprovement: summary.AreasForImprovement,
		CompletedAt:         candidate.CompletedAt,
	}, nil
}

// GetSession returns the progress tracker for a candidate.
func (s *InterviewService) GetSession(ctx context.Context, candidateID string) (*models.InterviewSession, error) {
	session, err := s.sessions.GetByCandidateID(ctx, candidateID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	return session, nil
}

// touchSession records activity; a missing session is tolerated so an
// answer submission never fails on session bookkeeping alone.
func (s *InterviewService) touchSession(ctx context.Context, candidateID string, now time.Time) {
	session, err := s.sessions.GetByCandidateID(ctx, candidateID)
	if err != nil {
		return
	}
	session.Touch(now)
	if err := s.sessions.Update(ctx, session); err != nil {
		s.logger.Warn("failed to update session activity",
			zap.String("candidate_id", candidateID), zap.Error(err))
	}
}
