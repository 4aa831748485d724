// Package jobs provides scheduled background tasks for the order
// coordination service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance work.
//
// # Available Jobs
//
// 1. OrderRetentionJob - Runs hourly to purge cancelled orders that have
// been untouched for longer than the configured retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeHandler, 24*time.Hour, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failed job
// start stops any already running jobs.
package jobs
