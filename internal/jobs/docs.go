// Package jobs provides scheduled background tasks for the order board.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. HeartbeatJob - sends a keepalive comment to every open event stream (default every 15 seconds)
// 2. BoardStatsJob - logs the number of waiting and completed orders (default every minute)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(hub, listOrdersHandler, jobs.Schedules{}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (seconds first). Empty schedules
// fall back to the job defaults.
//
// # Error Handling
//
// - Job failures are logged and never stop the scheduler
// - An invalid schedule fails StartAll; jobs already started are stopped
package jobs
