package jobs

import (
	"context"
	"errors"
	"log/slog"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefaultAssignmentSchedule runs auto-assignment every ten seconds.
const DefaultAssignmentSchedule = "@every 10s"

type AutoAssignDeliveryHandler interface {
	Handle(ctx context.Context, cmd commands.AutoAssignDeliveryCommand) (commands.AutoAssignResult, error)
}

// DeliveryAssignmentJob pairs ready orders with active agents for every
// configured store.
type DeliveryAssignmentJob struct {
	handler  AutoAssignDeliveryHandler
	stores   []kernel.UUID
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDeliveryAssignmentJob(
	handler AutoAssignDeliveryHandler,
	stores []kernel.UUID,
	schedule string,
	logger *slog.Logger,
) *DeliveryAssignmentJob {
	if schedule == "" {
		schedule = DefaultAssignmentSchedule
	}
	logger = logger.With("component", "delivery_assignment_job")
	return &DeliveryAssignmentJob{
		handler:  handler,
		stores:   stores,
		schedule: schedule,
		cron:     newScheduler(logger),
		logger:   logger,
	}
}

func (j *DeliveryAssignmentJob) Name() string {
	return "delivery assignment"
}

func (j *DeliveryAssignmentJob) Start() error {
	if _, err := j.cron.AddJob(j.schedule, nonOverlapping(j.logger, j.Run)); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery assignment job started",
		"schedule", j.schedule, "stores", len(j.stores))
	return nil
}

// Run performs one assignment pass over every configured store.
func (j *DeliveryAssignmentJob) Run() {
	ctx := context.Background()

	for _, storeID := range j.stores {
		cmd, err := commands.NewAutoAssignDeliveryCommand(storeID, nil)
		if err != nil {
			j.logger.ErrorContext(ctx, "Invalid assignment command", "store_id", storeID, "error", err)
			continue
		}

		res, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			// Losing a race to a manual assignment is expected.
			if !errors.Is(err, errs.ErrConcurrencyConflict) {
				j.logger.ErrorContext(ctx, "Delivery assignment job failed", "store_id", storeID, "error", err)
			}
			continue
		}
		if res.Assigned > 0 {
			j.logger.InfoContext(ctx, "Assigned deliveries", "store_id", storeID, "count", res.Assigned)
		}
	}
}

func (j *DeliveryAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery assignment job stopped")
}
