package jobs

import (
	"context"
	"log/slog"

	"checkout/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// FulfillmentJob manages the scheduled handover of paid orders.
// Runs every minute to advance the paid backlog to Shipped.
type FulfillmentJob struct {
	handler commands.ShipPaidOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewFulfillmentJob creates a new job for shipping paid orders.
// Uses ShipPaidOrdersCommandHandler to process the backlog every minute.
func NewFulfillmentJob(handler commands.ShipPaidOrdersCommandHandler, logger *slog.Logger) *FulfillmentJob {
	return &FulfillmentJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "fulfillment_job"),
	}
}

// Start begins the fulfillment job to run every minute.
func (j *FulfillmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewShipPaidOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Fulfillment job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fulfillment job started (running every minute)")
	return nil
}

// Stop stops the fulfillment job.
func (j *FulfillmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fulfillment job stopped")
}
