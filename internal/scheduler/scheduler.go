package scheduler

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"fleetrent-backend/internal/config"
	"fleetrent-backend/internal/jobs"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
	cfg  config.SchedulerConfig
	log  *slog.Logger
}

// NewScheduler creates a scheduler with UTC timezone and seconds precision.
func NewScheduler(jobRunner *jobs.JobRunner, cfg config.SchedulerConfig, log *slog.Logger) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{cron: c, jobs: jobRunner, cfg: cfg, log: log}
	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	if _, err := s.cron.AddFunc(s.cfg.ReportOverdueRentals, s.jobs.ReportOverdueRentals); err != nil {
		s.log.Error("failed to register ReportOverdueRentals job", "error", err)
		return
	}
	s.log.Info("cron jobs registered")
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("cron scheduler started")
}

// Stop gracefully stops the cron scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("cron scheduler stopped")
}
