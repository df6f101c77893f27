package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops the scheduled jobs together.
type JobManager struct {
	requestAssignmentJob *RequestAssignmentJob
}

func NewJobManager(
	assignPendingHandler assignPendingRequestHandler,
	assignmentSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		requestAssignmentJob: NewRequestAssignmentJob(assignPendingHandler, assignmentSchedule, logger),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.requestAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start request assignment job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	jm.requestAssignmentJob.Stop()
}
