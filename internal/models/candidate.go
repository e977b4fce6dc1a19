package models

import (
	"math"
	"time"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Recommendation tiers assigned by the summary synthesizer.
const (
	HighlyRecommended = "Highly Recommended"
	Recommended       = "Recommended"
	Maybe             = "Maybe"
	NotRecommended    = "Not Recommended"
)

// Question is immutable once attached to a candidate.
type Question struct {
	ID         string     `json:"id" bson:"id"`
	Text       string     `json:"text" bson:"text"`
	Difficulty Difficulty `json:"difficulty" bson:"difficulty"`
	TimeLimit  int        `json:"timeLimit" bson:"timeLimit"` // seconds, 60-1800
	Category   string     `json:"category" bson:"category"`
}

// Answer is keyed by questionId within a candidate; submitting again
// for the same question replaces the previous answer.
type Answer struct {
	QuestionID string    `json:"questionId" bson:"questionId"`
	Text       string    `json:"text" bson:"text"`
	Score      float64   `json:"score" bson:"score"`
	Feedback   string    `json:"feedback" bson:"feedback"`
	TimeSpent  int       `json:"timeSpent" bson:"timeSpent"` // seconds
	AnsweredAt time.Time `json:"answeredAt" bson:"answeredAt"`
}

// Candidate is the full interview record: profile, transcript and verdict.
type Candidate struct {
	ID         string     `json:"id" bson:"id"`
	Name       string     `json:"name" bson:"name"`
	Email      string     `json:"email" bson:"email"`
	Phone      string     `json:"phone" bson:"phone"`
	JobRole    string     `json:"jobRole" bson:"jobRole"`
	ResumeText string     `json:"resumeText" bson:"resumeText"`
	Questions  []Question `json:"questions" bson:"questions"`
	Answers    []Answer   `json:"answers" bson:"answers"`

	FinalScore    float64 `json:"finalScore" bson:"finalScore"`
	FinalFeedback string  `json:"finalFeedback" bson:"finalFeedback"`

	// Summary fields, populated on completion.
	Strengths           []string `json:"strengths,omitempty" bson:"strengths,omitempty"`
	AreasForImprovement []string `json:"areasForImprovement,omitempty" bson:"areasForImprovement,omitempty"`
	Recommendation      string   `json:"recommendation,omitempty" bson:"recommendation,omitempty"`

	// Derived fields, recomputed by the service layer on every mutation
	// instead of being persistence-hook side effects.
	CompletionPercentage int `json:"completionPercentage" bson:"completionPercentage"`
	TotalTimeSpent       int `json:"totalTimeSpent" bson:"totalTimeSpent"`

	Status      Status     `json:"status" bson:"status"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// AverageScore returns the mean answer score rounded to 2 decimals,
// or 0 when nothing has been answered yet.
func (c *Candidate) AverageScore() float64 {
	if len(c.Answers) == 0 {
		return 0
	}
	total := 0.0
	for _, a := range c.Answers {
		total += a.Score
	}
	return math.Round(total/float64(len(c.Answers))*100) / 100
}

// RecomputeDerived refreshes finalScore, completionPercentage and
// totalTimeSpent from the current answer list. Callers mutating answers
// must invoke this before persisting.
func (c *Candidate) RecomputeDerived() {
	if len(c.Answers) > 0 {
		c.FinalScore = c.AverageScore()
	}
	if len(c.Questions) > 0 {
		c.CompletionPercentage = int(math.Round(float64(len(c.Answers)) / float64(len(c.Questions)) * 100))
	} else {
		c.CompletionPercentage = 0
	}
	total := 0
	for _, a := range c.Answers {
		total += a.TimeSpent
	}
	c.TotalTimeSpent = total
}

// QuestionByID returns the attached question with the given id, if any.
func (c *Candidate) QuestionByID(id string) *Question {
	for i := range c.Questions {
		if c.Questions[i].ID == id {
			return &c.Questions[i]
		}
	}
	return nil
}

// UpsertAnswer replaces the answer for the same question or appends a new one.
func (c *Candidate) UpsertAnswer(ans Answer) {
	for i := range c.Answers {
		if c.Answers[i].QuestionID == ans.QuestionID {
			c.Answers[i] = ans
			return
		}
	}
	c.Answers = append(c.Answers, ans)
}
