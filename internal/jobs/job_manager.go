package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	otpCleanupJob *OtpCleanupJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(otpRepo ports.OtpRepository, logger *slog.Logger) *JobManager {
	return &JobManager{
		otpCleanupJob: NewOtpCleanupJob(otpRepo, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.otpCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start otp cleanup job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.otpCleanupJob.Stop()
}
