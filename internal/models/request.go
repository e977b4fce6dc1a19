package models

import (
	"regexp"
	"strings"
)

var emailFormat = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// difficulty filters accepted by question generation (lowercase)
var validDifficultyFilters = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
	"mixed":  true,
}

type StartInterviewRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	JobRole    string `json:"jobRole"`
	ResumeText string `json:"resumeText"`
}

// implements the Validator interface
func (r *StartInterviewRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.JobRole == "" || r.ResumeText == "" {
		return &ErrorResponse{
			Code:    "missing_fields",
			Message: "Missing required fields: name, email, jobRole, resumeText",
		}
	}
	if !emailFormat.MatchString(r.Email) {
		return &ErrorResponse{
			Code:    "invalid_email",
			Message: "Please enter a valid email address",
		}
	}
	return nil
}

type SubmitAnswerRequest struct {
	// QuestionIndex takes precedence over QuestionID when both are given.
	QuestionIndex *int   `json:"questionIndex,omitempty"`
	QuestionID    string `json:"questionId,omitempty"`
	Answer        string `json:"answer"`
	TimeSpent     int    `json:"timeSpent"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if r.QuestionIndex == nil && r.QuestionID == "" {
		return &ErrorResponse{
			Code:    "missing_question",
			Message: "Missing required fields: (questionIndex or questionId) and answer",
		}
	}
	if r.Answer == "" {
		return &ErrorResponse{
			Code:    "missing_answer",
			Message: "Missing required fields: (questionIndex or questionId) and answer",
		}
	}
	if r.QuestionIndex != nil && *r.QuestionIndex < 0 {
		return &ErrorResponse{
			Code:    "invalid_question_index",
			Message: "questionIndex must not be negative",
		}
	}
	if r.TimeSpent < 0 {
		return &ErrorResponse{
			Code:    "invalid_time_spent",
			Message: "timeSpent must not be negative",
		}
	}
	return nil
}

type AnalyzeResumeRequest struct {
	ResumeText string `json:"resumeText"`
}

func (r *AnalyzeResumeRequest) Validate() error {
	if r.ResumeText == "" {
		return &ErrorResponse{
			Code:    "missing_resume_text",
			Message: "Resume text is required",
		}
	}
	return nil
}

type GenerateQuestionsRequest struct {
	JobRole    string `json:"jobRole"`
	Difficulty string `json:"difficulty,omitempty"`
}

func (r *GenerateQuestionsRequest) Validate() error {
	if r.JobRole == "" {
		return &ErrorResponse{
			Code:    "missing_job_role",
			Message: "Job role is required",
		}
	}
	if r.Difficulty != "" && !validDifficultyFilters[strings.ToLower(r.Difficulty)] {
		return &ErrorResponse{
			Code:    "invalid_difficulty",
			Message: "Difficulty must be one of: Easy, Medium, Hard, mixed",
		}
	}
	return nil
}

type EvaluateAnswerRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty,omitempty"`
}

func (r *EvaluateAnswerRequest) Validate() error {
	if r.Question == "" || r.Answer == "" {
		return &ErrorResponse{
			Code:    "missing_fields",
			Message: "Question and answer are required",
		}
	}
	return nil
}

type GenerateSummaryRequest struct {
	Answers       []Answer       `json:"answers"`
	CandidateInfo *CandidateInfo `json:"candidateInfo,omitempty"`
}

func (r *GenerateSummaryRequest) Validate() error {
	if len(r.Answers) == 0 {
		return &ErrorResponse{
			Code:    "missing_answers",
			Message: "Answers are required for summary generation",
		}
	}
	return nil
}
