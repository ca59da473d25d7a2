package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/ayobami7/click-and-collect-notif/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CollectionRetentionJob manages the scheduled purge of terminal collection
// records. Runs hourly to delete collected and cancelled records past the
// retention window.
type CollectionRetentionJob struct {
	handler   commands.PurgeExpiredCollectionsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCollectionRetentionJob creates a new job for purging expired records.
// Uses PurgeExpiredCollectionsCommandHandler with the configured retention
// window.
func NewCollectionRetentionJob(
	handler commands.PurgeExpiredCollectionsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *CollectionRetentionJob {
	return &CollectionRetentionJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "collection_retention_job"),
	}
}

// Start begins the retention job, running at the top of every hour.
func (j *CollectionRetentionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeExpiredCollectionsCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Collection retention job misconfigured", "error", cmdErr)
			return
		}

		purged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Collection retention job failed", "error", handleErr)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged expired collection records", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Collection retention job started (running hourly)")
	return nil
}

// Stop stops the retention job.
func (j *CollectionRetentionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Collection retention job stopped")
}
