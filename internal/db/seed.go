package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: an approved driver with a vehicle and a few
// active campaigns to apply for. Intended for local development only.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	driverID := uuid.New()
	userID := uuid.New()
	_, err := pool.Exec(ctx, `INSERT INTO drivers (id, user_id, name, kyc_status)
VALUES ($1,$2,$3,'approved') ON CONFLICT DO NOTHING`,
		driverID, userID, "Demo Driver")
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `INSERT INTO vehicles (id, driver_id, plate, model, year, category_rank)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
		uuid.New(), driverID, "DEMO-0001", "Fiat Argo", 2021, 2)
	if err != nil {
		return err
	}

	for i := 1; i <= 3; i++ {
		_, err = pool.Exec(ctx, `INSERT INTO campaigns
    (id, advertiser_id, title, budget, payout_per_driver, num_cars,
     required_category, duration_days, end_at, status)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,'active') ON CONFLICT DO NOTHING`,
			uuid.New(), uuid.New(), fmt.Sprintf("Campaign %d", i),
			int64(500000), int64(30000), 10, 1, 30,
			time.Now().AddDate(0, 1, 0))
		if err != nil {
			return err
		}
	}
	return nil
}
