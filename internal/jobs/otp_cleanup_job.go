package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OtpCleanupJob sweeps expired dispatch credentials out of the store.
// Runs every minute; a stale code stops verifying the moment its expiry
// passes regardless of this sweep, so the job only keeps the table small.
type OtpCleanupJob struct {
	otpRepo ports.OtpRepository
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOtpCleanupJob creates a job that deletes expired OTP records.
func NewOtpCleanupJob(otpRepo ports.OtpRepository, logger *slog.Logger) *OtpCleanupJob {
	return &OtpCleanupJob{
		otpRepo: otpRepo,
		cron:    cron.New(),
		logger:  logger.With("component", "otp_cleanup_job"),
	}
}

// Start begins the cleanup job to run every minute.
func (j *OtpCleanupJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		deleted, err := j.otpRepo.DeleteExpired(ctx, time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "OTP cleanup job failed", "error", err)
			return
		}
		if deleted > 0 {
			j.logger.InfoContext(ctx, "Removed expired OTP records", "count", deleted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "OTP cleanup job started (running every minute)")
	return nil
}

// Stop stops the cleanup job.
func (j *OtpCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "OTP cleanup job stopped")
}
