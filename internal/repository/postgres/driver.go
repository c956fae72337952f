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

type driverRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewDriverRepository(db *sql.DB, log *slog.Logger) repository.DriverRepository {
	return &driverRepository{db: db, log: log}
}

const driverColumns = `id, identifier, name, cnpj, birth_date, license_number, license_type, license_image_path`

func (r *driverRepository) Create(ctx context.Context, d *domain.Driver) error {
	query := `INSERT INTO drivers (` + driverColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, d.ID, d.Identifier, d.Name, d.Cnpj, d.BirthDate, d.LicenseNumber, d.LicenseType, d.LicenseImagePath)
	if err != nil {
		return fmt.Errorf("insert driver: %w", err)
	}
	r.log.Debug("driver persisted", "driver_id", d.ID)
	return nil
}

func (r *driverRepository) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	return r.getByField(ctx, "id", id, domain.ErrDriverNotFound)
}

func (r *driverRepository) GetByCnpj(ctx context.Context, cnpj string) (*domain.Driver, error) {
	return r.getByField(ctx, "cnpj", cnpj, domain.ErrDriverNotFound)
}

func (r *driverRepository) GetByLicenseNumber(ctx context.Context, licenseNumber string) (*domain.Driver, error) {
	return r.getByField(ctx, "license_number", licenseNumber, domain.ErrDriverNotFound)
}

func (r *driverRepository) getByField(ctx context.Context, field, value string, notFound error) (*domain.Driver, error) {
	var d domain.Driver
	var imagePath sql.NullString
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE ` + field + ` = $1`
	err := r.db.QueryRowContext(ctx, query, value).
		Scan(&d.ID, &d.Identifier, &d.Name, &d.Cnpj, &d.BirthDate, &d.LicenseNumber, &d.LicenseType, &imagePath)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound
	}
	if err != nil {
		return nil, fmt.Errorf("get driver by %s: %w", field, err)
	}
	d.LicenseImagePath = imagePath.String
	return &d, nil
}

func (r *driverRepository) List(ctx context.Context) ([]domain.Driver, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+driverColumns+` FROM drivers ORDER BY identifier ASC`)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	var out []domain.Driver
	for rows.Next() {
		var d domain.Driver
		var imagePath sql.NullString
		if err := rows.Scan(&d.ID, &d.Identifier, &d.Name, &d.Cnpj, &d.BirthDate, &d.LicenseNumber, &d.LicenseType, &imagePath); err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		d.LicenseImagePath = imagePath.String
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *driverRepository) Update(ctx context.Context, d *domain.Driver) error {
	query := `UPDATE drivers SET name = $1, license_type = $2, license_image_path = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, d.Name, d.LicenseType, d.LicenseImagePath, d.ID)
	if err != nil {
		return fmt.Errorf("update driver: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrDriverNotFound
	}
	return nil
}
