// Package consumer turns bike-created events into notification records.
package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/events"
	"fleetrent-backend/internal/repository"
)

// NotificationYear selects which bike-created events produce a notification.
// Bikes from any other model year are acknowledged and dropped.
const NotificationYear = 2024

type deliverySource interface {
	Deliveries(ctx context.Context) (<-chan amqp.Delivery, error)
}

type BikeCreatedWorker struct {
	source deliverySource
	repo   repository.NotificationRepository
	log    *slog.Logger
}

func NewBikeCreatedWorker(source deliverySource, repo repository.NotificationRepository, log *slog.Logger) *BikeCreatedWorker {
	return &BikeCreatedWorker{source: source, repo: repo, log: log}
}

// Run consumes until the context is cancelled or the delivery channel closes.
// Messages are acked after the notification is durably recorded; failed
// messages are rejected without requeue.
func (w *BikeCreatedWorker) Run(ctx context.Context) error {
	deliveries, err := w.source.Deliveries(ctx)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			if err := w.handle(ctx, d.Body); err != nil {
				w.log.Error("bike-created event failed", "error", err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *BikeCreatedWorker) handle(ctx context.Context, body []byte) error {
	var event events.BikeCreated
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("decode bike-created event: %w", err)
	}

	if event.Year != NotificationYear {
		w.log.Debug("bike-created event skipped", "bike_id", event.BikeID, "year", event.Year)
		return nil
	}

	message := fmt.Sprintf("Bike %s from %d created.", event.Identifier, event.Year)
	n := domain.NewNotification(event.BikeID, event.Identifier, event.Year, message)

	created, err := w.repo.CreateIfNotConsumed(ctx, n, events.DedupKey(event.BikeID))
	if err != nil {
		return fmt.Errorf("persist notification: %w", err)
	}
	if created {
		w.log.Info("notification recorded", "bike_id", event.BikeID, "identifier", event.Identifier)
	}
	return nil
}
