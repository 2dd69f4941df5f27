package engine

import (
	"context"
	"fmt"

	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

// CreateShop validates and stores a new shop. A nil settings value gives the
// shop the default rates and service packages.
func (eng *Engine) CreateShop(
	ctx context.Context,
	name string,
	dailyCapacity int,
	settings *pricing.ShopSettings,
) (*domain.Shop, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if dailyCapacity < 0 {
		return nil, fmt.Errorf("%w: daily_capacity must be at least 0", ErrInvalidRequest)
	}

	s := pricing.DefaultShopSettings()
	if settings != nil {
		s = *settings
	}
	if err := eng.validate.Struct(&s); err != nil {
		return nil, validationError(ErrInvalidSettings, err)
	}

	shop := &domain.Shop{Name: name, DailyCapacity: dailyCapacity, Settings: s}
	if err := eng.store.CreateShop(ctx, shop); err != nil {
		return nil, fmt.Errorf("creating shop: %w", err)
	}

	eng.log.Info("shop created", "shop", shop.ID, "name", shop.Name, "packages", len(s.Packages))
	return shop, nil
}

// GetShop returns a shop through the cache.
func (eng *Engine) GetShop(ctx context.Context, id string) (*domain.Shop, error) {
	return eng.loadShop(ctx, id)
}

// UpdateShopSettings replaces a shop's pricing configuration and drops the
// cached copy so the next quote sees it.
func (eng *Engine) UpdateShopSettings(ctx context.Context, id string, settings pricing.ShopSettings) error {
	if err := eng.validate.Struct(&settings); err != nil {
		return validationError(ErrInvalidSettings, err)
	}

	if err := eng.store.UpdateShopSettings(ctx, id, settings); err != nil {
		return notFound(err, "shop %s", id)
	}

	if err := eng.cache.InvalidateShop(ctx, id); err != nil {
		eng.log.Warn("shop cache invalidation failed", "shop", id, "error", err)
	}

	eng.log.Info("shop settings updated", "shop", id)
	return nil
}

// UpsertCustomer validates and stores a customer's loyalty profile for an
// existing shop.
func (eng *Engine) UpsertCustomer(ctx context.Context, c *domain.Customer) error {
	if c.ID == "" {
		return fmt.Errorf("%w: customer id is required", ErrInvalidRequest)
	}
	if err := eng.validate.Struct(&c.Profile); err != nil {
		return validationError(ErrInvalidRequest, err)
	}
	if c.Profile.MembershipTier == "" {
		c.Profile.MembershipTier = pricing.TierNone
	}

	if _, err := eng.loadShop(ctx, c.ShopID); err != nil {
		return err
	}

	if err := eng.store.UpsertCustomer(ctx, c); err != nil {
		return fmt.Errorf("saving customer: %w", err)
	}
	return nil
}
