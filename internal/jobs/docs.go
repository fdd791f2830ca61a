// Package jobs provides scheduled background tasks for the order management
// service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, with a seconds field).
//
// # Available Jobs
//
// SessionReaperJob discards editing sessions that have been idle longer than
// the configured TTL. Its schedule defaults to once a minute.
//
// # Usage
//
//	reaper := jobs.NewSessionReaperJob(editingService, 30*time.Minute, "", logger)
//	jobManager := jobs.NewJobManager(reaper)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// An invalid schedule fails StartAll; jobs that already started are stopped again.
package jobs
