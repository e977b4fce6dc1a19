package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
)

func scored(scores ...float64) []models.Answer {
	answers := make([]models.Answer, 0, len(scores))
	for i, s := range scores {
		answers = append(answers, models.Answer{QuestionID: string(rune('a' + i)), Score: s})
	}
	return answers
}

func TestGenerateSummaryHighlyRecommended(t *testing.T) {
	summary := GenerateSummary(scored(9, 8, 9.5), &models.CandidateInfo{
		Name:    "John Doe",
		JobRole: "Frontend Developer",
	})

	assert.Equal(t, 8.8, summary.OverallScore)
	assert.Equal(t, 3, summary.TotalQuestions)
	assert.Equal(t, models.HighlyRecommended, summary.Recommendation)
	assert.Contains(t, summary.Feedback, "John Doe")
	assert.Contains(t, summary.Feedback, "Frontend Developer")
	assert.NotEmpty(t, summary.Strengths)
	assert.NotEmpty(t, summary.AreasForImprovement)
}

func TestGenerateSummaryEmptyAnswers(t *testing.T) {
	summary := GenerateSummary(nil, nil)

	assert.Equal(t, 0.0, summary.OverallScore)
	assert.Equal(t, 0, summary.TotalQuestions)
	assert.Equal(t, models.NotRecommended, summary.Recommendation)
	assert.Contains(t, summary.Feedback, "The candidate")
}

func TestGenerateSummaryBands(t *testing.T) {
	tests := []struct {
		name           string
		scores         []float64
		recommendation string
	}{
		{"top band closed at 10", []float64{10, 10}, models.HighlyRecommended},
		{"lower edge of top band", []float64{8.5}, models.HighlyRecommended},
		{"just below top band", []float64{8.4}, models.Recommended},
		{"lower edge of recommended", []float64{7}, models.Recommended},
		{"maybe band", []float64{5.5}, models.Maybe},
		{"just below maybe", []float64{5.4}, models.NotRecommended},
		{"bottom closed at 0", []float64{0}, models.NotRecommended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := GenerateSummary(scored(tt.scores...), nil)
			assert.Equal(t, tt.recommendation, summary.Recommendation)
		})
	}
}

func TestGenerateSummaryRoundsMeanToOneDecimal(t *testing.T) {
	summary := GenerateSummary(scored(7, 8), nil)

	assert.Equal(t, 7.5, summary.OverallScore)
	assert.Equal(t, models.Recommended, summary.Recommendation)
}
