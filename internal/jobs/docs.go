// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations of the decision engine.
//
// # Available Jobs
//
// 1. CourierAssignmentJob - Runs every second to retry assignment for orders
// that found no on-duty courier at intake.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(ledger, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The assignment job uses the cron expression "* * * * * *", running every
// second so backlog orders are dispatched as soon as a courier goes on duty.
//
// # Error Handling
//
// An empty backlog or a backlog with no eligible couriers is a normal
// outcome and is not logged; only unexpected failures are.
package jobs
