package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dashboardBroadcastJob *DashboardBroadcastJob
	boundaryScanJob       *BoundaryScanJob
}

// NewJobManager creates a new job manager over the constructed jobs.
func NewJobManager(
	dashboardBroadcastJob *DashboardBroadcastJob,
	boundaryScanJob *BoundaryScanJob,
) *JobManager {
	return &JobManager{
		dashboardBroadcastJob: dashboardBroadcastJob,
		boundaryScanJob:       boundaryScanJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dashboardBroadcastJob.Start(); err != nil {
		return fmt.Errorf("failed to start dashboard broadcast job: %w", err)
	}

	if err := jm.boundaryScanJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dashboardBroadcastJob.Stop()
		return fmt.Errorf("failed to start boundary scan job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.boundaryScanJob.Stop()
	jm.dashboardBroadcastJob.Stop()
}
