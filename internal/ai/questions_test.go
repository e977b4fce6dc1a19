package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
)

func newTestBank(t *testing.T) *QuestionBank {
	t.Helper()
	bank, err := NewQuestionBank()
	require.NoError(t, err)
	return bank
}

func TestGenerateFullRoleBankInOrder(t *testing.T) {
	bank := newTestBank(t)

	questions := bank.Generate("Frontend Developer", "")

	require.Len(t, questions, 5)
	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"fe-1", "fe-2", "fe-3", "fe-4", "fe-5"}, ids)
}

func TestGenerateDifficultyFilterPreservesOrder(t *testing.T) {
	bank := newTestBank(t)

	questions := bank.Generate("Frontend Developer", "easy")

	require.Len(t, questions, 2)
	assert.Equal(t, "fe-1", questions[0].ID)
	assert.Equal(t, "fe-4", questions[1].ID)
	for _, q := range questions {
		assert.Equal(t, models.Easy, q.Difficulty)
	}
}

func TestGenerateMixedReturnsEverything(t *testing.T) {
	bank := newTestBank(t)

	assert.Equal(t, bank.Generate("Backend Developer", ""), bank.Generate("Backend Developer", "mixed"))
}

func TestGenerateUnknownRoleFallsBackToDefault(t *testing.T) {
	bank := newTestBank(t)

	questions := bank.Generate("Underwater Basket Weaver", "")

	require.Len(t, questions, 5)
	assert.Equal(t, "se-1", questions[0].ID)
}

func TestGenerateIsDeterministic(t *testing.T) {
	bank := newTestBank(t)

	assert.Equal(t, bank.Generate("QA Engineer", "Hard"), bank.Generate("QA Engineer", "Hard"))
}

func TestAllRolesHaveAtLeastFiveQuestions(t *testing.T) {
	bank := newTestBank(t)

	roles := []string{
		"Frontend Developer", "Backend Developer", "Full Stack Developer",
		"Data Scientist", "DevOps Engineer", "Product Manager",
		"QA Engineer", "Software Engineer",
	}
	for _, role := range roles {
		questions := bank.Generate(role, "")
		assert.GreaterOrEqual(t, len(questions), 5, "role %s", role)
		for _, q := range questions {
			assert.NotEmpty(t, q.ID)
			assert.NotEmpty(t, q.Text)
			assert.GreaterOrEqual(t, q.TimeLimit, 60)
			assert.LessOrEqual(t, q.TimeLimit, 1800)
		}
	}
}

func TestFallbackQuestion(t *testing.T) {
	q := FallbackQuestion("Platform Engineer")

	assert.Equal(t, "Tell me about your experience with Platform Engineer responsibilities.", q.Text)
	assert.Equal(t, models.Medium, q.Difficulty)
	assert.Equal(t, 300, q.TimeLimit)
}
