package models

// ResumeAnalysis holds fields extracted from raw resume text.
// Any field may be empty except JobRole, which always carries a default.
type ResumeAnalysis struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	JobRole string `json:"jobRole"`
}

// AnswerEvaluation is the scorer verdict for a single answer.
type AnswerEvaluation struct {
	Score    float64 `json:"score"` // 0-10, 1 decimal
	Feedback string  `json:"feedback"`
}

// CandidateInfo is the optional phrasing context for summary generation.
type CandidateInfo struct {
	Name    string `json:"name"`
	JobRole string `json:"jobRole"`
	Email   string `json:"email,omitempty"`
}

// InterviewSummary is the synthesized final verdict.
type InterviewSummary struct {
	OverallScore        float64  `json:"overallScore"`
	TotalQuestions      int      `json:"totalQuestions"`
	Feedback            string   `json:"feedback"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	Recommendation      string   `json:"recommendation"`
}
