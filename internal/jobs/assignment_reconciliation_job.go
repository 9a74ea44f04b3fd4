package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"foodcourt/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AssignmentReconciliationJob periodically sweeps Ready delivery orders that
// have no courier and retries auto-assignment. Push assignment at the moment
// an order turns Ready is best effort; this job is the safety net that picks
// up orders left behind when no courier was registered at that moment.
type AssignmentReconciliationJob struct {
	handler  commands.ReconcileAssignmentsCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewAssignmentReconciliationJob creates the reconciliation job. The
// schedule is a six-field cron expression with a seconds column, e.g.
// "*/15 * * * * *" for every fifteen seconds.
func NewAssignmentReconciliationJob(
	handler commands.ReconcileAssignmentsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *AssignmentReconciliationJob {
	return &AssignmentReconciliationJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "assignment_reconciliation_job"),
	}
}

// Start begins the reconciliation sweep on the configured schedule.
func (j *AssignmentReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewReconcileAssignmentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "assignment reconciliation failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"assignment reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *AssignmentReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "assignment reconciliation job stopped")
}

// JobManager coordinates the application's scheduled jobs.
type JobManager struct {
	reconciliationJob *AssignmentReconciliationJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	reconcileHandler commands.ReconcileAssignmentsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reconciliationJob: NewAssignmentReconciliationJob(reconcileHandler, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.reconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start assignment reconciliation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reconciliationJob.Stop()
}
