package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type rentalRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewRentalRepository(db *sql.DB, log *slog.Logger) repository.RentalRepository {
	return &rentalRepository{db: db, log: log}
}

const rentalColumns = `id, driver_id, bike_id, identifier, plan_type, start_date, planned_end_date, end_date`

// overlapQuery is the SQL form of domain.Rental.ConflictsWith, applied over
// the bike's full history: a settled rental counts by its actual end date, an
// open one by its planned end date.
const overlapQuery = `SELECT EXISTS (
	SELECT 1 FROM rentals
	WHERE bike_id = $1
	  AND start_date <= $3
	  AND COALESCE(end_date, planned_end_date) >= $2
)`

func (r *rentalRepository) CreateIfNoOverlap(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rental tx: %w", err)
	}
	defer tx.Rollback()

	// Serialize creations per bike so two requests cannot both pass the
	// overlap check before either commits.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, rt.BikeID); err != nil {
		return fmt.Errorf("acquire bike lock: %w", err)
	}

	var busy bool
	if err := tx.QueryRowContext(ctx, overlapQuery, rt.BikeID, rt.StartDate, rt.PlannedEndDate).Scan(&busy); err != nil {
		return fmt.Errorf("check rental overlap: %w", err)
	}
	if busy {
		return domain.ErrBikeAlreadyRented
	}

	query := `INSERT INTO rentals (id, driver_id, bike_id, identifier, plan_type, start_date, planned_end_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := tx.ExecContext(ctx, query, rt.ID, rt.DriverID, rt.BikeID, rt.Identifier, rt.Plan.Type, rt.StartDate, rt.PlannedEndDate); err != nil {
		return fmt.Errorf("insert rental: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rental: %w", err)
	}
	r.log.Debug("rental persisted", "rental_id", rt.ID, "bike_id", rt.BikeID)
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE id = $1`, id)
	rt, err := scanRental(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get rental by id: %w", err)
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	_, err := r.db.ExecContext(ctx, `UPDATE rentals SET end_date = $1 WHERE id = $2`, rt.EndDate, rt.ID)
	if err != nil {
		return fmt.Errorf("update rental: %w", err)
	}
	return nil
}

func (r *rentalRepository) ExistsForBike(ctx context.Context, bikeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM rentals WHERE bike_id = $1)`, bikeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check rentals for bike: %w", err)
	}
	return exists, nil
}

func (r *rentalRepository) NextIdentifier(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.db.QueryRowContext(ctx, `SELECT nextval('rental_identifier_seq')`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next rental identifier: %w", err)
	}
	return seq, nil
}

func (r *rentalRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE end_date IS NULL AND planned_end_date < $1 ORDER BY planned_end_date ASC`
	rows, err := r.db.QueryContext(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("list overdue rentals: %w", err)
	}
	defer rows.Close()

	var out []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("scan overdue rental: %w", err)
		}
		out = append(out, *rt)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	var (
		rt       domain.Rental
		planType domain.PlanType
		endDate  sql.NullTime
	)
	if err := row.Scan(&rt.ID, &rt.DriverID, &rt.BikeID, &rt.Identifier, &planType, &rt.StartDate, &rt.PlannedEndDate, &endDate); err != nil {
		return nil, err
	}
	plan, err := domain.PlanFromType(planType)
	if err != nil {
		return nil, err
	}
	rt.Plan = plan
	if endDate.Valid {
		rt.EndDate = &endDate.Time
	}
	return &rt, nil
}
