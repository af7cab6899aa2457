package jobs

import (
	"context"
	"log/slog"

	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DefaultStatsSchedule fires at the top of every minute.
const DefaultStatsSchedule = "0 * * * * *"

// BoardStatsJob periodically logs how many orders are waiting and completed.
type BoardStatsJob struct {
	handler  queries.ListOrdersQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBoardStatsJob creates the stats job. An empty schedule uses
// DefaultStatsSchedule.
func NewBoardStatsJob(handler queries.ListOrdersQueryHandler, schedule string, logger *slog.Logger) *BoardStatsJob {
	if schedule == "" {
		schedule = DefaultStatsSchedule
	}

	return &BoardStatsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "board_stats_job"),
	}
}

// Start registers the job and starts the scheduler.
func (j *BoardStatsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board stats job started", "schedule", j.schedule)
	return nil
}

// Run logs one snapshot of the board counters.
func (j *BoardStatsJob) Run(ctx context.Context) {
	orders, err := j.handler.Handle(ctx, queries.NewListOrdersQuery(""))
	if err != nil {
		j.logger.ErrorContext(ctx, "Board stats job failed", "error", err)
		return
	}

	waiting, completed := 0, 0
	for _, o := range orders {
		switch o.Status {
		case order.Waiting:
			waiting++
		case order.Completed:
			completed++
		}
	}

	j.logger.InfoContext(ctx, "Order board stats", "waiting", waiting, "completed", completed)
}

// Stop stops the scheduler and waits for a running snapshot to finish.
func (j *BoardStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Board stats job stopped")
}
