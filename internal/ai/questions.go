package ai

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
)

// embeds the question bank YAML files at compile time
//
//go:embed banks/*.yaml
var bankFS embed.FS

// MixedDifficulty selects questions of every difficulty.
const MixedDifficulty = "mixed"

// QuestionBank serves interview questions from the embedded static table.
type QuestionBank struct {
	roles map[string][]models.Question
}

type bankFile struct {
	Roles map[string][]bankQuestion `yaml:"roles"`
}

type bankQuestion struct {
	ID         string `yaml:"id"`
	Text       string `yaml:"text"`
	Difficulty string `yaml:"difficulty"`
	TimeLimit  int    `yaml:"time_limit"`
	Category   string `yaml:"category"`
}

// NewQuestionBank loads all embedded bank files.
func NewQuestionBank() (*QuestionBank, error) {
	qb := &QuestionBank{roles: make(map[string][]models.Question)}

	entries, err := bankFS.ReadDir("banks")
	if err != nil {
		return nil, fmt.Errorf("failed to read question banks directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := bankFS.ReadFile("banks/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read bank file %s: %w", entry.Name(), err)
		}

		var file bankFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse bank file %s: %w", entry.Name(), err)
		}

		for role, questions := range file.Roles {
			for _, q := range questions {
				qb.roles[role] = append(qb.roles[role], models.Question{
					ID:         q.ID,
					Text:       q.Text,
					Difficulty: models.Difficulty(q.Difficulty),
					TimeLimit:  q.TimeLimit,
					Category:   q.Category,
				})
			}
		}
	}

	return qb, nil
}

// RoleCount reports how many roles have a bank loaded.
func (qb *QuestionBank) RoleCount() int {
	return len(qb.roles)
}

// Generate returns the questions for a job role, optionally filtered by
// difficulty. Unknown roles fall back to the default role's bank; if even
// that is unavailable a single generic question is produced so callers
// always have something to ask. An empty result after difficulty filtering
// is a valid outcome, not an error.
func (qb *QuestionBank) Generate(jobRole, difficulty string) []models.Question {
	questions, ok := qb.roles[jobRole]
	if !ok {
		questions, ok = qb.roles[DefaultJobRole]
	}
	if !ok || len(questions) == 0 {
		return []models.Question{FallbackQuestion(jobRole)}
	}

	if difficulty == "" || strings.EqualFold(difficulty, MixedDifficulty) {
		return append([]models.Question(nil), questions...)
	}

	filtered := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if strings.EqualFold(string(q.Difficulty), difficulty) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// FallbackQuestion is the generic question used when the bank cannot
// resolve a role at all.
func FallbackQuestion(jobRole string) models.Question {
	return models.Question{
		ID:         "fallback-1",
		Text:       fmt.Sprintf("Tell me about your experience with %s responsibilities.", jobRole),
		Difficulty: models.Medium,
		TimeLimit:  300,
		Category:   "General Experience",
	}
}
