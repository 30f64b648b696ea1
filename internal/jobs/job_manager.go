package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	offerReminderJob *OfferReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	rebroadcastHandler commands.RebroadcastOffersCommandHandler,
	reminderAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		offerReminderJob: NewOfferReminderJob(rebroadcastHandler, reminderAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.offerReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start offer reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.offerReminderJob.Stop()
}
