package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderRetentionJob periodically removes cancelled orders that outlived
// their retention window. Runs hourly; a cancelled order only disappears
// once it has been untouched for the full window.
type OrderRetentionJob struct {
	handler   commands.PurgeStaleOrdersCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderRetentionJob creates a retention job with the given window.
func NewOrderRetentionJob(
	handler commands.PurgeStaleOrdersCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *OrderRetentionJob {
	return &OrderRetentionJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "order_retention_job"),
	}
}

// Start begins the hourly retention sweep.
func (j *OrderRetentionJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeStaleOrdersCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order retention job misconfigured", "error", cmdErr)
			return
		}

		purged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order retention job failed", "error", handleErr)
			return
		}
		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged stale cancelled orders", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order retention job started (running hourly)")
	return nil
}

// Stop stops the retention job.
func (j *OrderRetentionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order retention job stopped")
}
