package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"drivead/internal/core/domain"
)

const campaignColumns = `id, advertiser_id, title, budget, payout_per_driver, num_cars,
       required_category, duration_days, end_at, status, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.AdvertiserID, &c.Title, &c.Budget, &c.PayoutPerDriver,
		&c.NumCars, &c.RequiredCategory, &c.DurationDays, &c.EndAt, &c.Status,
		&c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// GetByID returns a campaign by id, or nil when absent.
func (r *CampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateStatus moves the campaign from -> to, reporting whether a row
// changed.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.CampaignStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`,
		to, id, from)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListActive returns campaigns accepting applications.
func (r *CampaignRepository) ListActive(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE status = $1 AND end_at > now() ORDER BY created_at`,
		domain.CampaignActive)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// ListActiveExpired returns active campaigns whose end date has passed.
func (r *CampaignRepository) ListActiveExpired(ctx context.Context, now time.Time) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE status = $1 AND end_at < $2`,
		domain.CampaignActive, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}
