// Package redis implements the interview session store on Redis. Sessions
// are short-lived progress trackers, so a key-value store with cheap purge
// fits better than the candidate document store.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/repositories"
)

const sessionKeyPrefix = "interview:session:"

type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func sessionKey(candidateID string) string {
	return sessionKeyPrefix + candidateID
}

func (r *SessionRepository) Create(ctx context.Context, s *models.InterviewSession) error {
	return r.set(ctx, s)
}

func (r *SessionRepository) Update(ctx context.Context, s *models.InterviewSession) error {
	exists, err := r.rdb.Exists(ctx, sessionKey(s.CandidateID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check session existence: %w", err)
	}
	if exists == 0 {
		return repositories.ErrNotFound
	}
	return r.set(ctx, s)
}

func (r *SessionRepository) set(ctx context.Context, s *models.InterviewSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.rdb.Set(ctx, sessionKey(s.CandidateID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByCandidateID(ctx context.Context, candidateID string) (*models.InterviewSession, error) {
	data, err := r.rdb.Get(ctx, sessionKey(candidateID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var s models.InterviewSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

// PurgeStale walks all session keys and removes inactive sessions whose
// last activity predates the cutoff.
func (r *SessionRepository) PurgeStale(ctx context.Context, cutoff time.Time) (int, error) {
	purged := 0
	var cursor uint64

	for {
		keys, next, err := r.rdb.Scan(ctx, cursor, sessionKeyPrefix+"*", 100).Result()
		if err != nil {
			return purged, fmt.Errorf("failed to scan sessions: %w", err)
		}

		for _, key := range keys {
			data, err := r.rdb.Get(ctx, key).Bytes()
			if errors.Is(err, redis.Nil) {
				continue
			}
			if err != nil {
				return purged, fmt.Errorf("failed to load session %s: %w", key, err)
			}

			var s models.InterviewSession
			if err := json.Unmarshal(data, &s); err != nil {
				// unreadable entry, drop it
				_ = r.rdb.Del(ctx, key).Err()
				purged++
				continue
			}

			if !s.IsActive && s.LastActivityAt.Before(cutoff) {
				if err := r.rdb.Del(ctx, key).Err(); err != nil {
					return purged, fmt.Errorf("failed to delete session %s: %w", key, err)
				}
				purged++
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return purged, nil
}
