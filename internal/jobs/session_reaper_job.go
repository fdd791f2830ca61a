package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSessionReaperSchedule runs the reaper every minute (seconds field first).
const DefaultSessionReaperSchedule = "0 * * * * *"

// IdleSessionDiscarder closes editing sessions left idle. editing.Service
// satisfies it.
type IdleSessionDiscarder interface {
	DiscardIdle(ctx context.Context, ttl time.Duration) int
}

// SessionReaperJob discards editing sessions nobody touched for longer than
// ttl. Sessions with a submission in flight are left alone.
type SessionReaperJob struct {
	sessions IdleSessionDiscarder
	ttl      time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewSessionReaperJob(
	sessions IdleSessionDiscarder,
	ttl time.Duration,
	schedule string,
	logger *slog.Logger,
) *SessionReaperJob {
	if schedule == "" {
		schedule = DefaultSessionReaperSchedule
	}
	return &SessionReaperJob{
		sessions: sessions,
		ttl:      ttl,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_reaper_job"),
	}
}

// Start registers the reaper with its schedule and starts the scheduler.
func (j *SessionReaperJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session reaper job started",
		"schedule", j.schedule, "ttl", j.ttl.String())
	return nil
}

// Run performs one sweep.
func (j *SessionReaperJob) Run() {
	ctx := context.Background()
	if n := j.sessions.DiscardIdle(ctx, j.ttl); n > 0 {
		j.logger.InfoContext(ctx, "Idle editing sessions discarded", "count", n)
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *SessionReaperJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session reaper job stopped")
}
