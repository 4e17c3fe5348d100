// Package jobs provides scheduled background tasks for the fulfillment
// service, built on github.com/robfig/cron/v3.
//
// OtpCleanupJob runs every minute and deletes dispatch credentials whose
// validity window has passed. Expiry is enforced at verification time as
// well; the sweep exists to keep the credential table from growing without
// bound.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(otpRepo, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
