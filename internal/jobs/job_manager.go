package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	opportunityDigestJob *OpportunityDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(opportunityDigestJob *OpportunityDigestJob) *JobManager {
	return &JobManager{
		opportunityDigestJob: opportunityDigestJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.opportunityDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start opportunity digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.opportunityDigestJob.Enabled() {
		jm.opportunityDigestJob.Stop()
	}
}
