package models

import "time"

// InterviewSession tracks an in-flight interview for one candidate.
// It is ephemeral: deactivated on completion and purged once stale.
type InterviewSession struct {
	ID                   string    `json:"id"`
	CandidateID          string    `json:"candidateId"`
	CurrentQuestionIndex int       `json:"currentQuestionIndex"`
	IsActive             bool      `json:"isActive"`
	StartedAt            time.Time `json:"startedAt"`
	LastActivityAt       time.Time `json:"lastActivityAt"`
	TimeRemaining        int       `json:"timeRemaining"` // seconds
}

// Touch records candidate activity.
func (s *InterviewSession) Touch(now time.Time) {
	s.LastActivityAt = now
}

// Complete deactivates the session.
func (s *InterviewSession) Complete(now time.Time) {
	s.IsActive = false
	s.LastActivityAt = now
}
