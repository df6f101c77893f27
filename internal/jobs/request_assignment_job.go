package jobs

import (
	"context"
	"errors"
	"log/slog"

	"wasteflow/internal/core/application/usecases/commands"
	"wasteflow/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DefaultAssignmentSchedule runs the assignment job every 30 seconds.
const DefaultAssignmentSchedule = "*/30 * * * * *"

type assignPendingRequestHandler interface {
	Handle(ctx context.Context, command commands.AssignPendingRequestCommand) error
}

// RequestAssignmentJob places the oldest pending collection request on
// every tick.
type RequestAssignmentJob struct {
	handler  assignPendingRequestHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRequestAssignmentJob takes a six-field cron expression; an empty
// schedule falls back to DefaultAssignmentSchedule.
func NewRequestAssignmentJob(
	handler assignPendingRequestHandler,
	schedule string,
	logger *slog.Logger,
) *RequestAssignmentJob {
	if schedule == "" {
		schedule = DefaultAssignmentSchedule
	}
	return &RequestAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "request_assignment_job"),
	}
}

func (j *RequestAssignmentJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.runOnce); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Request assignment job started", "schedule", j.schedule)
	return nil
}

func (j *RequestAssignmentJob) runOnce() {
	ctx := context.Background()
	err := j.handler.Handle(ctx, commands.NewAssignPendingRequestCommand())
	switch {
	case err == nil:
	case errors.Is(err, commands.ErrNoPendingRequestFound):
	case errors.Is(err, services.ErrNoEligibleAssignee):
		j.logger.DebugContext(ctx, "No eligible vehicle for the oldest pending request")
	default:
		j.logger.ErrorContext(ctx, "Request assignment job failed", "error", err)
	}
}

// Stop waits for a running tick to finish.
func (j *RequestAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Request assignment job stopped")
}
