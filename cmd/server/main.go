package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "fleetrent-backend/internal/api/http"
	"fleetrent-backend/internal/config"
	"fleetrent-backend/internal/consumer"
	"fleetrent-backend/internal/events"
	"fleetrent-backend/internal/jobs"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/mq"
	"fleetrent-backend/internal/repository/postgres"
	"fleetrent-backend/internal/scheduler"
	"fleetrent-backend/internal/service"
	"fleetrent-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	slogger := logger.New(cfg.Log.Level, cfg.Log.Format)
	slogger.Info("starting fleetrent backend",
		"address", cfg.GetServerAddress(),
		"database", cfg.Database.Database,
		"exchange", cfg.RabbitMQ.Exchange)

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

	localStorage, err := storage.NewLocalStorage(cfg.Storage.UploadDir, slogger)
	if err != nil {
		slogger.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}

	publisher, err := mq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, slogger)
	if err != nil {
		slogger.Error("failed to connect publisher to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	bikeConsumer, err := mq.NewConsumer(
		cfg.RabbitMQ.URL,
		cfg.RabbitMQ.Exchange,
		cfg.RabbitMQ.BikeCreatedQueue,
		[]string{events.RKBikeCreated},
		cfg.RabbitMQ.Prefetch,
		slogger,
	)
	if err != nil {
		slogger.Error("failed to connect consumer to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer bikeConsumer.Close()

	bikeService := service.NewBikeService(store.BikeRepository, store.RentalRepository, publisher, slogger)
	driverService := service.NewDriverService(store.DriverRepository, localStorage, slogger)
	rentalService := service.NewRentalService(store.RentalRepository, store.BikeRepository, store.DriverRepository, slogger)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	worker := consumer.NewBikeCreatedWorker(bikeConsumer, store.NotificationRepository, slogger)
	go func() {
		if err := worker.Run(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
			slogger.Error("bike-created worker stopped", "error", err)
		}
	}()

	jobRunner := jobs.NewJobRunner(store.RentalRepository, slogger)
	cronScheduler := scheduler.NewScheduler(jobRunner, cfg.Scheduler, slogger)
	cronScheduler.Start()

	router := httpapi.NewRouter(bikeService, driverService, rentalService)
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		slogger.Info("http server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slogger.Info("shutting down")
	cronScheduler.Stop()
	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slogger.Error("http shutdown failed", "error", err)
	}
	slogger.Info("shutdown complete")
}
