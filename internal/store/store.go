// Package store defines the datastore abstraction for inspection-pricing.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"time"

	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

// EstimateQuery defines optional filters for estimate queries.
type EstimateQuery struct {
	ShopID       *string
	InspectionID *string
	CustomerID   *string
	Statuses     []string
	MinTotal     *float64
	MaxTotal     *float64
	Divergent    *bool
	Limit        int // default 50
	Offset       int
	OrderBy      string // "created_at", "updated_at", "total"
}

// Store defines all data access operations for inspection-pricing.
// Lookups that find nothing return pgx.ErrNoRows.
type Store interface {
	// Shops
	CreateShop(ctx context.Context, s *domain.Shop) error
	GetShop(ctx context.Context, id string) (*domain.Shop, error)
	ListShops(ctx context.Context) ([]domain.Shop, error)
	UpdateShopSettings(ctx context.Context, id string, settings pricing.ShopSettings) error

	// Customers
	UpsertCustomer(ctx context.Context, c *domain.Customer) error
	GetCustomer(ctx context.Context, shopID, id string) (*domain.Customer, error)

	// Market snapshots
	UpsertMarketSnapshot(ctx context.Context, m *domain.MarketSnapshot) error
	GetMarketSnapshot(ctx context.Context, shopID string, day time.Time) (*domain.MarketSnapshot, error)
	GetLatestMarketSnapshot(ctx context.Context, shopID string) (*domain.MarketSnapshot, error)

	// Estimates
	CreateEstimate(ctx context.Context, e *domain.Estimate) error
	GetEstimate(ctx context.Context, id string) (*domain.Estimate, error)
	ListEstimates(ctx context.Context, opts *EstimateQuery) ([]domain.Estimate, int, error)
	UpdateEstimateStatus(ctx context.Context, id string, status domain.EstimateStatus) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
