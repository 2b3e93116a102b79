package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"drivead/internal/core/domain"
)

// DriverRepository implements port.DriverRepository using pgxpool.
type DriverRepository struct {
	pool *pgxpool.Pool
}

// NewDriverRepository returns a new repository instance.
func NewDriverRepository(pool *pgxpool.Pool) *DriverRepository {
	return &DriverRepository{pool: pool}
}

// GetByUserID returns the driver profile for an authenticated user, or nil
// when the user has none.
func (r *DriverRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Driver, error) {
	var d domain.Driver
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, name, kyc_status, created_at FROM drivers WHERE user_id = $1`,
		userID,
	).Scan(&d.ID, &d.UserID, &d.Name, &d.KycStatus, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetPrimaryVehicle returns the driver's highest-ranked vehicle, or nil.
func (r *DriverRepository) GetPrimaryVehicle(ctx context.Context, driverID uuid.UUID) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := r.pool.QueryRow(ctx,
		`SELECT id, driver_id, plate, model, year, category_rank, created_at
         FROM vehicles WHERE driver_id = $1
         ORDER BY category_rank DESC, created_at ASC LIMIT 1`,
		driverID,
	).Scan(&v.ID, &v.DriverID, &v.Plate, &v.Model, &v.Year, &v.CategoryRank, &v.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}
