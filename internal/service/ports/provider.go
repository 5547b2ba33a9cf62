package ports

import (
	"context"

	"github.com/ndmitriev/BookPay/internal/domain"
)

type ProviderRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
	GetByConnectAccountID(ctx context.Context, accountID string) (*domain.Provider, error)
	// UpdateConnectFlags writes the charge/payout flags and reports whether
	// they actually changed, so redundant webhook re-delivery stays silent.
	UpdateConnectFlags(ctx context.Context, id string, chargesEnabled, payoutsEnabled bool) (bool, error)
	UpdateKYCStatus(ctx context.Context, id string, status domain.KYCStatus) (bool, error)
}

type ServiceCatalogRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

type PayoutRepo interface {
	UpsertByExternalID(ctx context.Context, p *domain.Payout) error
}
