package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/repositories"
)

func candidate(id, email string, createdAt time.Time) *models.Candidate {
	return &models.Candidate{
		ID:        id,
		Name:      "Candidate " + id,
		Email:     email,
		JobRole:   "Software Engineer",
		Status:    models.StatusInProgress,
		CreatedAt: createdAt,
	}
}

func TestCandidateCreateAndGet(t *testing.T) {
	repo := NewCandidateRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, candidate("c1", "a@example.com", now)))

	byID, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "c1", byEmail.ID)
}

func TestCandidateCreateDuplicateEmail(t *testing.T) {
	repo := NewCandidateRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, candidate("c1", "a@example.com", now)))

	err := repo.Create(ctx, candidate("c2", "a@example.com", now))
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)
}

func TestCandidateGetMissing(t *testing.T) {
	repo := NewCandidateRepository()

	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCandidateListNewestFirst(t *testing.T) {
	repo := NewCandidateRepository()
	ctx := context.Background()
	base := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, candidate("c1", "a@example.com", base.Add(-2*time.Hour))))
	require.NoError(t, repo.Create(ctx, candidate("c2", "b@example.com", base.Add(-1*time.Hour))))
	require.NoError(t, repo.Create(ctx, candidate("c3", "c@example.com", base)))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c3", list[0].ID)
	assert.Equal(t, "c2", list[1].ID)
	assert.Equal(t, "c1", list[2].ID)
}

func TestCandidateUpdate(t *testing.T) {
	repo := NewCandidateRepository()
	ctx := context.Background()

	c := candidate("c1", "a@example.com", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, c))

	c.Status = models.StatusCompleted
	c.FinalScore = 7.25
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.Equal(t, 7.25, got.FinalScore)

	err = repo.Update(ctx, candidate("ghost", "x@example.com", time.Now().UTC()))
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCandidateGetReturnsCopy(t *testing.T) {
	repo := NewCandidateRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, candidate("c1", "a@example.com", time.Now().UTC())))

	first, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	first.Name = "mutated"

	second, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Candidate c1", second.Name)
}
