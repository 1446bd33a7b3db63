// Package jobs provides scheduled background tasks for the order management
// service, built on github.com/robfig/cron/v3.
//
// The only job today is TokenCleanupJob, which purges expired access token
// rows hourly so revocation checks stay cheap. Jobs are managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(purgeHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
