package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/repositories"
)

type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]models.InterviewSession // by candidate id
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]models.InterviewSession)}
}

func (r *SessionRepository) Create(ctx context.Context, s *models.InterviewSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.CandidateID] = *s
	return nil
}

func (r *SessionRepository) GetByCandidateID(ctx context.Context, candidateID string) (*models.InterviewSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[candidateID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &s, nil
}

func (r *SessionRepository) Update(ctx context.Context, s *models.InterviewSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.CandidateID]; !ok {
		return repositories.ErrNotFound
	}
	r.sessions[s.CandidateID] = *s
	return nil
}

func (r *SessionRepository) PurgeStale(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	purged := 0
	for id, s := range r.sessions {
		if !s.IsActive && s.LastActivityAt.Before(cutoff) {
			delete(r.sessions, id)
			purged++
		}
	}
	return purged, nil
}
