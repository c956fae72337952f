package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type notificationRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewNotificationRepository(db *sql.DB, log *slog.Logger) repository.NotificationRepository {
	return &notificationRepository{db: db, log: log}
}

// CreateIfNotConsumed records the event dedup key and the notification in one
// transaction. Redelivered messages hit the key conflict and insert nothing,
// so a crash between persist and ack cannot double-insert.
func (r *notificationRepository) CreateIfNotConsumed(ctx context.Context, n *domain.Notification, eventKey string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin notification tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO events_consumed (event_key, processed_at) VALUES ($1, $2) ON CONFLICT (event_key) DO NOTHING`,
		eventKey, n.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("record consumed event: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		r.log.Debug("event already consumed, skipping", "event_key", eventKey)
		return false, tx.Commit()
	}

	query := `INSERT INTO notifications (id, bike_id, bike_identifier, bike_year, message, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.ExecContext(ctx, query, n.ID, n.BikeID, n.BikeIdentifier, n.BikeYear, n.Message, n.CreatedAt); err != nil {
		return false, fmt.Errorf("insert notification: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit notification: %w", err)
	}
	return true, nil
}
