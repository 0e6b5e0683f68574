package jobs

import (
	"context"
	"log/slog"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultReaperSchedule runs the reaper once a minute.
const DefaultReaperSchedule = "@every 1m"

type AutoCancelStaleOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.AutoCancelStaleOrdersCommand) ([]kernel.UUID, error)
}

// StaleOrderReaperJob cancels orders left in PENDING for longer than
// staleAfter, store by store.
type StaleOrderReaperJob struct {
	handler    AutoCancelStaleOrdersHandler
	stores     []kernel.UUID
	staleAfter time.Duration
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

func NewStaleOrderReaperJob(
	handler AutoCancelStaleOrdersHandler,
	stores []kernel.UUID,
	staleAfter time.Duration,
	schedule string,
	logger *slog.Logger,
) *StaleOrderReaperJob {
	if schedule == "" {
		schedule = DefaultReaperSchedule
	}
	logger = logger.With("component", "stale_order_reaper_job")
	return &StaleOrderReaperJob{
		handler:    handler,
		stores:     stores,
		staleAfter: staleAfter,
		schedule:   schedule,
		cron:       newScheduler(logger),
		logger:     logger,
	}
}

func (j *StaleOrderReaperJob) Name() string {
	return "stale order reaper"
}

// Start schedules Run. An unparsable schedule is returned as an error.
func (j *StaleOrderReaperJob) Start() error {
	if _, err := j.cron.AddJob(j.schedule, nonOverlapping(j.logger, j.Run)); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order reaper job started",
		"schedule", j.schedule, "stores", len(j.stores), "stale_after", j.staleAfter)
	return nil
}

// Run performs one pass over every configured store. A failing store does
// not stop the pass.
func (j *StaleOrderReaperJob) Run() {
	ctx := context.Background()

	for _, storeID := range j.stores {
		cmd, err := commands.NewAutoCancelStaleOrdersCommand(storeID, j.staleAfter)
		if err != nil {
			j.logger.ErrorContext(ctx, "Invalid reaper command", "store_id", storeID, "error", err)
			continue
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order reaper failed", "store_id", storeID, "error", err)
			continue
		}
		if len(cancelled) > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale orders", "store_id", storeID, "count", len(cancelled))
		}
	}
}

// Stop waits for a running pass to finish.
func (j *StaleOrderReaperJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale order reaper job stopped")
}
