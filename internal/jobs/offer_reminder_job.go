package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// reminderSchedule fires once a minute. Offer staleness is measured in
// minutes, so a tighter schedule would only repeat the same broadcasts.
const reminderSchedule = "0 * * * * *"

// OfferReminderJob periodically re-publishes offers that have waited
// unclaimed longer than the configured age.
type OfferReminderJob struct {
	handler   commands.RebroadcastOffersCommandHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOfferReminderJob creates a job re-broadcasting offers older than the
// given age.
func NewOfferReminderJob(
	handler commands.RebroadcastOffersCommandHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *OfferReminderJob {
	return &OfferReminderJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "offer_reminder_job"),
	}
}

// Start begins the reminder schedule.
func (j *OfferReminderJob) Start() error {
	_, err := j.cron.AddFunc(reminderSchedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRebroadcastOffersCommand(j.olderThan)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "offer reminder misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "offer reminder run failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "offer reminder job started",
		"older_than", j.olderThan.String(),
	)
	return nil
}

// Stop stops the reminder schedule.
func (j *OfferReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "offer reminder job stopped")
}
