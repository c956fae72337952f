package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"fleetrent-backend/internal/config"
	"fleetrent-backend/internal/jobs"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository/postgres"
	"fleetrent-backend/internal/scheduler"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'report-overdue-rentals', 'all-nightly')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	slogger := logger.New(cfg.Log.Level, cfg.Log.Format)
	slogger.Info("starting fleetrent cronjob runner", "log_level", cfg.Log.Level)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		slogger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		slogger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	slogger.Info("database connection established", "host", cfg.Database.Host)

	store := postgres.NewStore(db, slogger)
	jobRunner := jobs.NewJobRunner(store.RentalRepository, slogger)

	if *runOnce != "" {
		slogger.Info("running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		return
	}

	cronScheduler := scheduler.NewScheduler(jobRunner, cfg.Scheduler, slogger)
	cronScheduler.Start()
	slogger.Info("cronjob scheduler is running")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	cronScheduler.Stop()
}

func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "report-overdue-rentals":
		jobRunner.ReportOverdueRentals()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		fmt.Printf("Unknown job %q. Available jobs:\n", jobName)
		fmt.Printf("  - report-overdue-rentals\n")
		fmt.Printf("  - all-nightly\n")
		os.Exit(1)
	}
}
