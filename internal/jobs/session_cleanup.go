package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/repositories"
)

// SessionCleanupJob periodically purges inactive interview sessions that
// have seen no activity for longer than MaxAge.
type SessionCleanupJob struct {
	sessions repositories.SessionRepository
	config   *CleanupConfig
	logger   *zap.Logger
	cron     *cron.Cron
}

type CleanupConfig struct {
	Schedule string        // cron schedule, e.g. "@every 1h"
	MaxAge   time.Duration // inactivity threshold before purge
}

func NewSessionCleanupJob(sessions repositories.SessionRepository, config *CleanupConfig, logger *zap.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{
		sessions: sessions,
		config:   config,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start schedules the cleanup run.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		if err := j.RunOnce(context.Background()); err != nil {
			j.logger.Error("session cleanup run failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule session cleanup: %w", err)
	}

	j.cron.Start()
	j.logger.Info("session cleanup scheduled", zap.String("schedule", j.config.Schedule))
	return nil
}

// Stop cancels future runs.
func (j *SessionCleanupJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// RunOnce performs a single purge pass.
func (j *SessionCleanupJob) RunOnce(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-j.config.MaxAge)
	purged, err := j.sessions.PurgeStale(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to purge stale sessions: %w", err)
	}
	if purged > 0 {
		j.logger.Info("purged stale sessions", zap.Int("count", purged))
	}
	return nil
}
