// Package memory provides map-backed repositories used when no database is
// configured and as fixtures in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/repositories"
)

type CandidateRepository struct {
	mu         sync.RWMutex
	candidates map[string]models.Candidate // by id
}

func NewCandidateRepository() *CandidateRepository {
	return &CandidateRepository{candidates: make(map[string]models.Candidate)}
}

func (r *CandidateRepository) Create(ctx context.Context, c *models.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.candidates {
		if existing.Email == c.Email {
			return repositories.ErrDuplicateEmail
		}
	}
	r.candidates[c.ID] = *c
	return nil
}

func (r *CandidateRepository) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.candidates[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (r *CandidateRepository) GetByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.candidates {
		if c.Email == email {
			copied := c
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *CandidateRepository) List(ctx context.Context) ([]models.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Candidate, 0, len(r.candidates))
	for _, c := range r.candidates {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *CandidateRepository) Update(ctx context.Context, c *models.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.candidates[c.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.candidates[c.ID] = *c
	return nil
}
