package models

import "time"

// uniform error payload
type ErrorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Details []ValidationErrorDetail `json:"details,omitempty"`
}

// lets request validators return an ErrorResponse directly
func (e *ErrorResponse) Error() string {
	return e.Message
}

// a single field error
type ValidationErrorDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ConflictResponse reports a duplicate email together with the
// candidate that already holds it. No new record is created.
type ConflictResponse struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	CandidateID string `json:"candidateId"`
}

// StartInterviewResponse is returned when an interview is created.
type StartInterviewResponse struct {
	CandidateID   string `json:"candidateId"`
	SessionID     string `json:"sessionId"`
	QuestionCount int    `json:"questionCount"`
}

// CandidateSummary is the dashboard list projection.
type CandidateSummary struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	JobRole           string     `json:"jobRole"`
	FinalScore        float64    `json:"finalScore"`
	Status            Status     `json:"status"`
	CreatedAt         time.Time  `json:"createdAt"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
	QuestionsAnswered int        `json:"questionsAnswered"`
	TotalQuestions    int        `json:"totalQuestions"`
}

// CandidatesResponse wraps the dashboard listing.
type CandidatesResponse struct {
	Total int                `json:"total"`
	Items []CandidateSummary `json:"items"`
}

// SubmitAnswerResponse reports the score for one answer plus progress counts.
type SubmitAnswerResponse struct {
	Score             float64 `json:"score"`
	Feedback          string  `json:"feedback"`
	QuestionsAnswered int     `json:"questionsAnswered"`
	TotalQuestions    int     `json:"totalQuestions"`
}

// CompleteInterviewResponse carries the final verdict.
type CompleteInterviewResponse struct {
	FinalScore          float64    `json:"finalScore"`
	Feedback            string     `json:"feedback"`
	Recommendation      string     `json:"recommendation"`
	Strengths           []string   `json:"strengths"`
	AreasForImprovement []string   `json:"areasForImprovement"`
	CompletedAt         *time.Time `json:"completedAt,omitempty"`
}

// QuestionsResponse wraps generated questions.
type QuestionsResponse struct {
	Total int        `json:"total"`
	Items []Question `json:"items"`
}

// Summary converts a candidate to its dashboard projection.
func (c *Candidate) Summary() CandidateSummary {
	return CandidateSummary{
		ID:                c.ID,
		Name:              c.Name,
		Email:             c.Email,
		JobRole:           c.JobRole,
		FinalScore:        c.FinalScore,
		Status:            c.Status,
		CreatedAt:         c.CreatedAt,
		CompletedAt:       c.CompletedAt,
		QuestionsAnswered: len(c.Answers),
		TotalQuestions:    len(c.Questions),
	}
}
