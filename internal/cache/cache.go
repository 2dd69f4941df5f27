// Package cache provides a read-through cache for shop records so quoting
// does not hit PostgreSQL for every estimate.
package cache

import (
	"context"

	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

// Cache stores shops keyed by ID. A miss is reported as (nil, false, nil).
type Cache interface {
	GetShop(ctx context.Context, id string) (*domain.Shop, bool, error)
	SetShop(ctx context.Context, shop *domain.Shop) error
	InvalidateShop(ctx context.Context, id string) error
}

// NoopCache is a Cache that never stores anything. Used when caching is
// disabled.
type NoopCache struct{}

// NewNoopCache creates a new NoopCache.
func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

// GetShop always misses.
func (*NoopCache) GetShop(_ context.Context, _ string) (*domain.Shop, bool, error) {
	return nil, false, nil
}

// SetShop does nothing.
func (*NoopCache) SetShop(_ context.Context, _ *domain.Shop) error {
	return nil
}

// InvalidateShop does nothing.
func (*NoopCache) InvalidateShop(_ context.Context, _ string) error {
	return nil
}
