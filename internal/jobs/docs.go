// Package jobs provides scheduled background tasks for the dispatch engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the offer board.
//
// # Available Jobs
//
// 1. OfferReminderJob - periodically re-publishes offers that have waited
// unclaimed longer than the configured age, so couriers who came online after
// the original broadcast still see them.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(rebroadcastHandler, reminderAge, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reminder job logs failures and tries again on the next tick; a broker
// outage never stops the schedule.
package jobs
