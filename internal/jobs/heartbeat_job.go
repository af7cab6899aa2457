package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultHeartbeatSchedule fires every fifteen seconds.
const DefaultHeartbeatSchedule = "*/15 * * * * *"

// Pinger is the part of the broadcast hub the heartbeat drives.
type Pinger interface {
	Ping()
	Len() int
}

// HeartbeatJob sends a keepalive comment to every open stream so idle
// connections are not reaped by proxies.
type HeartbeatJob struct {
	pinger   Pinger
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewHeartbeatJob creates a heartbeat running on the given cron schedule
// (with seconds). An empty schedule uses DefaultHeartbeatSchedule.
func NewHeartbeatJob(pinger Pinger, schedule string, logger *slog.Logger) *HeartbeatJob {
	if schedule == "" {
		schedule = DefaultHeartbeatSchedule
	}

	return &HeartbeatJob{
		pinger:   pinger,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "heartbeat_job"),
	}
}

// Start registers the heartbeat and starts the scheduler.
func (j *HeartbeatJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Heartbeat job started", "schedule", j.schedule)
	return nil
}

// Run performs one heartbeat.
func (j *HeartbeatJob) Run(ctx context.Context) {
	j.pinger.Ping()
	j.logger.DebugContext(ctx, "Heartbeat sent", "sessions", j.pinger.Len())
}

// Stop stops the scheduler and waits for a running heartbeat to finish.
func (j *HeartbeatJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Heartbeat job stopped")
}
