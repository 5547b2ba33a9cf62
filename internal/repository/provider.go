package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ndmitriev/BookPay/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const providerColumns = `id, name, connect_account_id, charges_enabled, payouts_enabled, kyc_status, created_at, updated_at`

type ProviderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProviderRepo(db *dbpg.DB) *ProviderRepository {
	return &ProviderRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ProviderRepository) GetByID(ctx context.Context, id string) (*domain.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *ProviderRepository) GetByConnectAccountID(ctx context.Context, accountID string) (*domain.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE connect_account_id = $1`
	return r.get(ctx, query, accountID)
}

func (r *ProviderRepository) get(ctx context.Context, query string, arg any) (*domain.Provider, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get provider: %w", err)
	}

	var p domain.Provider
	if err = row.Scan(
		&p.ID, &p.Name, &p.ConnectAccountID, &p.ChargesEnabled,
		&p.PayoutsEnabled, &p.KYCStatus, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProviderNotFound
		}
		return nil, fmt.Errorf("scan provider: %w", err)
	}

	return &p, nil
}

// UpdateConnectFlags writes only when a flag actually differs, so the rows
// affected result doubles as a changed indicator for webhook replays.
func (r *ProviderRepository) UpdateConnectFlags(ctx context.Context, id string, chargesEnabled, payoutsEnabled bool) (bool, error) {
	query := `UPDATE providers
			  SET charges_enabled = $2, payouts_enabled = $3, updated_at = now()
			  WHERE id = $1 AND (charges_enabled <> $2 OR payouts_enabled <> $3)`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, chargesEnabled, payoutsEnabled)
	if err != nil {
		return false, fmt.Errorf("update provider connect flags: %w", err)
	}

	return affected(res)
}

func (r *ProviderRepository) UpdateKYCStatus(ctx context.Context, id string, status domain.KYCStatus) (bool, error) {
	query := `UPDATE providers
			  SET kyc_status = $2, updated_at = now()
			  WHERE id = $1 AND kyc_status <> $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return false, fmt.Errorf("update provider kyc status: %w", err)
	}

	return affected(res)
}

type ServiceCatalogRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewServiceCatalogRepo(db *dbpg.DB) *ServiceCatalogRepository {
	return &ServiceCatalogRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ServiceCatalogRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	query := `SELECT id, provider_id, title, price_cents, charges_gst, active, created_at
			  FROM services
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	var s domain.Service
	if err = row.Scan(
		&s.ID, &s.ProviderID, &s.Title, &s.PriceCents,
		&s.ChargesGST, &s.Active, &s.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("scan service: %w", err)
	}

	return &s, nil
}
