package jobs

import (
	"fmt"
	"log/slog"

	"orderboard/internal/core/application/usecases/queries"
)

// Schedules holds the cron expressions (with seconds) of every job.
type Schedules struct {
	Heartbeat string
	Stats     string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	heartbeatJob  *HeartbeatJob
	boardStatsJob *BoardStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	pinger Pinger,
	listOrdersHandler queries.ListOrdersQueryHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		heartbeatJob:  NewHeartbeatJob(pinger, schedules.Heartbeat, logger),
		boardStatsJob: NewBoardStatsJob(listOrdersHandler, schedules.Stats, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.heartbeatJob.Start(); err != nil {
		return fmt.Errorf("failed to start heartbeat job: %w", err)
	}

	if err := jm.boardStatsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.heartbeatJob.Stop()
		return fmt.Errorf("failed to start board stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.heartbeatJob.Stop()
	jm.boardStatsJob.Stop()
}
