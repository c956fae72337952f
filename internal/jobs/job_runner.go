package jobs

import (
	"log/slog"

	"fleetrent-backend/internal/repository"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	rentalRepo repository.RentalRepository
	log        *slog.Logger
}

func NewJobRunner(rentalRepo repository.RentalRepository, log *slog.Logger) *JobRunner {
	return &JobRunner{rentalRepo: rentalRepo, log: log}
}

// runWithRecovery wraps job execution with panic recovery so one bad job
// cannot take down the scheduler.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			jr.log.Error("job panicked", "job", jobName, "panic", r)
		}
	}()

	jr.log.Info("starting job", "job", jobName)
	jobFunc()
	jr.log.Info("job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ReportOverdueRentals()
}
