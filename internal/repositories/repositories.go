// Package repositories defines the persistence contracts for candidates and
// interview sessions, with Mongo/Redis implementations in subpackages and
// in-memory fallbacks for development and tests.
package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a candidate email is already taken.
	ErrDuplicateEmail = errors.New("candidate email already exists")
)

// CandidateRepository stores full interview records.
type CandidateRepository interface {
	Create(ctx context.Context, c *models.Candidate) error
	GetByID(ctx context.Context, id string) (*models.Candidate, error)
	GetByEmail(ctx context.Context, email string) (*models.Candidate, error)
	// List returns all candidates, newest first.
	List(ctx context.Context) ([]models.Candidate, error)
	Update(ctx context.Context, c *models.Candidate) error
}

// SessionRepository stores per-candidate interview sessions. At most one
// session exists per candidate id.
type SessionRepository interface {
	Create(ctx context.Context, s *models.InterviewSession) error
	GetByCandidateID(ctx context.Context, candidateID string) (*models.InterviewSession, error)
	Update(ctx context.Context, s *models.InterviewSession) error
	// PurgeStale deletes inactive sessions whose last activity is older
	// than the cutoff, returning how many were removed.
	PurgeStale(ctx context.Context, cutoff time.Time) (int, error)
}
