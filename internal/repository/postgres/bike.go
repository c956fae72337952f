package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type bikeRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewBikeRepository(db *sql.DB, log *slog.Logger) repository.BikeRepository {
	return &bikeRepository{db: db, log: log}
}

func (r *bikeRepository) Create(ctx context.Context, b *domain.Bike) error {
	query := `INSERT INTO bikes (id, identifier, year, model, plate) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query, b.ID, b.Identifier, b.Year, b.Model, b.Plate); err != nil {
		return fmt.Errorf("insert bike: %w", err)
	}
	r.log.Debug("bike persisted", "bike_id", b.ID, "plate", b.Plate)
	return nil
}

func (r *bikeRepository) GetByID(ctx context.Context, id string) (*domain.Bike, error) {
	var b domain.Bike
	query := `SELECT id, identifier, year, model, plate FROM bikes WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Identifier, &b.Year, &b.Model, &b.Plate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBikeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get bike by id: %w", err)
	}
	return &b, nil
}

func (r *bikeRepository) GetByPlate(ctx context.Context, plate string) (*domain.Bike, error) {
	var b domain.Bike
	query := `SELECT id, identifier, year, model, plate FROM bikes WHERE plate = $1`
	err := r.db.QueryRowContext(ctx, query, plate).Scan(&b.ID, &b.Identifier, &b.Year, &b.Model, &b.Plate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBikeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get bike by plate: %w", err)
	}
	return &b, nil
}

func (r *bikeRepository) List(ctx context.Context, plate string) ([]domain.Bike, error) {
	query := `SELECT id, identifier, year, model, plate FROM bikes`
	args := []any{}
	if plate != "" {
		query += ` WHERE plate = $1`
		args = append(args, plate)
	}
	query += ` ORDER BY identifier ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bikes: %w", err)
	}
	defer rows.Close()

	var out []domain.Bike
	for rows.Next() {
		var b domain.Bike
		if err := rows.Scan(&b.ID, &b.Identifier, &b.Year, &b.Model, &b.Plate); err != nil {
			return nil, fmt.Errorf("scan bike: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *bikeRepository) Update(ctx context.Context, b *domain.Bike) error {
	query := `UPDATE bikes SET identifier = $1, year = $2, model = $3, plate = $4 WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, b.Identifier, b.Year, b.Model, b.Plate, b.ID)
	if err != nil {
		return fmt.Errorf("update bike: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrBikeNotFound
	}
	return nil
}

func (r *bikeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bikes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bike: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrBikeNotFound
	}
	return nil
}
