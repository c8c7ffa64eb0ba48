package jobs

import (
	"context"
	"log/slog"

	"foodmarket/internal/core/domain/model/ledger"

	"github.com/robfig/cron/v3"
)

// CourierAssignmentJob retries courier assignment for the order backlog.
// Orders that found no candidate at intake stay unassigned; this job runs
// every second so they are picked up as soon as a courier goes on duty.
type CourierAssignmentJob struct {
	ledger *ledger.Ledger
	cron   *cron.Cron
	logger *slog.Logger
}

// NewCourierAssignmentJob creates a new job for assigning couriers.
func NewCourierAssignmentJob(l *ledger.Ledger, logger *slog.Logger) *CourierAssignmentJob {
	return &CourierAssignmentJob{
		ledger: l,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "courier_assignment_job"),
	}
}

// Start begins the courier assignment job to run every second.
func (j *CourierAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		assigned, err := j.ledger.AssignPendingOrders()
		if err != nil {
			j.logger.ErrorContext(ctx, "Courier assignment job failed", "error", err)
			return
		}

		if assigned > 0 {
			j.logger.InfoContext(ctx, "Assigned pending orders", "count", assigned)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier assignment job started (running every second)")
	return nil
}

// Stop stops the courier assignment job.
func (j *CourierAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier assignment job stopped")
}
