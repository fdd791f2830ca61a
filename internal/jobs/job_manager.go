package jobs

import (
	"fmt"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs  []namedJob
	start int
}

type namedJob struct {
	name string
	job  Job
}

// NewJobManager creates a job manager around the session reaper.
func NewJobManager(sessionReaper *SessionReaperJob) *JobManager {
	jm := &JobManager{}
	jm.Add("session reaper", sessionReaper)
	return jm
}

// Add registers another job. Jobs start in the order they were added.
func (jm *JobManager) Add(name string, job Job) {
	jm.jobs = append(jm.jobs, namedJob{name: name, job: job})
}

// StartAll starts all scheduled jobs.
// If one fails the jobs already started are stopped again.
func (jm *JobManager) StartAll() error {
	for i, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			for k := i - 1; k >= 0; k-- {
				jm.jobs[k].job.Stop()
			}
			jm.start = 0
			return fmt.Errorf("failed to start %s job: %w", nj.name, err)
		}
		jm.start = i + 1
	}
	return nil
}

// StopAll stops the started jobs gracefully, newest first.
func (jm *JobManager) StopAll() {
	for k := jm.start - 1; k >= 0; k-- {
		jm.jobs[k].job.Stop()
	}
	jm.start = 0
}
