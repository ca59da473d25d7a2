package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ayobami7/click-and-collect-notif/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	collectionRetentionJob *CollectionRetentionJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	purgeHandler commands.PurgeExpiredCollectionsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		collectionRetentionJob: NewCollectionRetentionJob(purgeHandler, retention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.collectionRetentionJob.Start(); err != nil {
		return fmt.Errorf("failed to start collection retention job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.collectionRetentionJob.Stop()
}
