package ai

import (
	"fmt"
	"math"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
)

// GenerateSummary synthesizes a final verdict from scored answers.
// The overall score is the 1-decimal mean of the answer scores (0 with no
// answers); one of four fixed score bands picks the feedback template,
// strengths, improvement areas and recommendation tier.
func GenerateSummary(answers []models.Answer, info *models.CandidateInfo) models.InterviewSummary {
	total := 0.0
	for _, a := range answers {
		total += a.Score
	}
	overall := 0.0
	if len(answers) > 0 {
		overall = math.Round(total/float64(len(answers))*10) / 10
	}

	name := "The candidate"
	role := "technical"
	if info != nil {
		if info.Name != "" {
			name = info.Name
		}
		if info.JobRole != "" {
			role = info.JobRole
		}
	}

	summary := models.InterviewSummary{
		OverallScore:   overall,
		TotalQuestions: len(answers),
	}

	switch {
	case overall >= 8.5:
		summary.Feedback = fmt.Sprintf(
			"Outstanding performance! %s demonstrated exceptional knowledge and communication skills throughout the %s interview.",
			name, role)
		summary.Strengths = []string{
			"Excellent technical knowledge",
			"Clear and articulate communication",
			"Comprehensive understanding of concepts",
		}
		summary.AreasForImprovement = []string{"Continue building on current expertise"}
		summary.Recommendation = models.HighlyRecommended
	case overall >= 7:
		summary.Feedback = fmt.Sprintf(
			"Strong performance. %s showed solid understanding of %s concepts with good communication skills.",
			name, role)
		summary.Strengths = []string{
			"Good technical foundation",
			"Effective communication",
			"Sound understanding of core concepts",
		}
		summary.AreasForImprovement = []string{
			"Provide more detailed explanations",
			"Include more practical examples",
		}
		summary.Recommendation = models.Recommended
	case overall >= 5.5:
		summary.Feedback = fmt.Sprintf(
			"Satisfactory performance. %s demonstrated basic understanding but lacked depth in some areas.",
			name)
		summary.Strengths = []string{"Basic technical understanding", "Willingness to learn"}
		summary.AreasForImprovement = []string{
			"Develop deeper technical knowledge",
			"Practice explaining concepts clearly",
			"Gain more hands-on experience",
		}
		summary.Recommendation = models.Maybe
	default:
		summary.Feedback = fmt.Sprintf(
			"Below expectations. %s showed limited understanding of key concepts.",
			name)
		summary.Strengths = []string{"Shows potential for growth"}
		summary.AreasForImprovement = []string{
			"Significant technical skill development needed",
			"Study fundamental concepts thoroughly",
		}
		summary.Recommendation = models.NotRecommended
	}

	return summary
}
