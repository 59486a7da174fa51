// Package jobs provides scheduled background tasks for the checkout system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required after order placement.
//
// # Available Jobs
//
// 1. FulfillmentJob - Runs every minute to hand paid orders over to fulfillment
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(shipPaidOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The fulfillment job uses the cron expression "* * * * *", running once a
// minute. Shipping is a batch handover, so sub-minute latency is not needed.
//
// # Error Handling
//
// The fulfillment job logs all errors: a failed sweep leaves the whole paid
// backlog for the next run rather than shipping it partially.
package jobs
