package ai

import (
	"math"
	"regexp"
	"strings"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
)

const baseScore = 5.0

// content-quality cues; each hit adds a fixed bonus and a feedback fragment
var (
	exampleCues     = regexp.MustCompile(`(?i)example|for instance|such as|like|consider`)
	explanationCues = regexp.MustCompile(`(?i)because|since|due to|reason|explain`)
	technicalCues   = regexp.MustCompile(`(?i)function|method|algorithm|data|system|process|implement`)
)

// EvaluateAnswer scores an answer against its question with an additive
// heuristic: length bonus, content-quality bonuses, then a difficulty
// adjustment. The result is clamped to [0,10] and rounded to 1 decimal.
// Identical inputs always produce identical output.
func EvaluateAnswer(question, answer string, difficulty models.Difficulty) models.AnswerEvaluation {
	if difficulty == "" {
		difficulty = models.Medium
	}

	score := baseScore
	var notes strings.Builder

	answerLength := len(strings.TrimSpace(answer))
	switch {
	case answerLength < 20:
		notes.WriteString("Answer is too brief. ")
	case answerLength < 100:
		score += 1
		notes.WriteString("Answer could be more detailed. ")
	case answerLength < 300:
		score += 2
		notes.WriteString("Good level of detail. ")
	case answerLength < 500:
		score += 3
		notes.WriteString("Comprehensive answer. ")
	default:
		// diminishing return for over-length answers
		score += 2.5
		notes.WriteString("Very detailed response. ")
	}

	if exampleCues.MatchString(answer) {
		score += 1
		notes.WriteString("Includes good examples. ")
	}
	if explanationCues.MatchString(answer) {
		score += 1
		notes.WriteString("Provides clear explanations. ")
	}
	if technicalCues.MatchString(answer) {
		score += 0.5
		notes.WriteString("Uses appropriate technical language. ")
	}

	switch {
	case strings.EqualFold(string(difficulty), string(models.Easy)):
		if answerLength > 50 {
			score += 0.5
		}
	case strings.EqualFold(string(difficulty), string(models.Hard)):
		if answerLength < 200 {
			score -= 1
		} else {
			score += 1
		}
	}

	score = math.Max(0, math.Min(10, score))
	score = math.Round(score*10) / 10

	var opening, closing string
	switch {
	case score >= 8:
		opening = "Excellent answer! "
		closing = "Demonstrates strong understanding."
	case score >= 6:
		opening = "Good answer. "
		closing = "Shows solid knowledge with room for improvement."
	case score >= 4:
		opening = "Adequate answer. "
		closing = "Consider providing more depth and examples."
	default:
		opening = "Answer needs improvement. "
		closing = "Please provide more detailed explanations."
	}

	return models.AnswerEvaluation{
		Score:    score,
		Feedback: strings.TrimSpace(opening + notes.String() + closing),
	}
}
