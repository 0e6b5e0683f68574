// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and run per store for the
// stores listed in configuration:
//
//  1. StaleOrderReaperJob cancels orders that stayed PENDING for too long
//  2. DeliveryAssignmentJob assigns READY_FOR_PICKUP orders to active agents
//
// # Usage
//
//	reaper := jobs.NewStaleOrderReaperJob(autoCancelHandler, stores, 30*time.Minute, "@every 1m", logger)
//	assignment := jobs.NewDeliveryAssignmentJob(autoAssignHandler, stores, "@every 10s", logger)
//
//	jobManager := jobs.NewJobManager(reaper, assignment)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules accept six-field cron expressions (with seconds) and descriptors
// such as "@every 10s".
//
// # Error Handling
//
//   - A failing store is logged and the pass continues with the next store
//   - The assignment job does not log concurrency conflicts
//   - Failed job starts stop any already running jobs
package jobs
