package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

// CreateShopRequest is the body for creating a shop. Nil settings use the
// server's defaults.
type CreateShopRequest struct {
	Name          string                `json:"name"`
	DailyCapacity int                   `json:"daily_capacity"`
	Settings      *pricing.ShopSettings `json:"settings,omitempty"`
}

// CreateShop creates a new shop.
func (c *Client) CreateShop(ctx context.Context, req *CreateShopRequest) (*domain.Shop, error) {
	var shop domain.Shop
	if err := c.post(ctx, "/api/v1/shops", req, &shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

// ListShops returns all shops.
func (c *Client) ListShops(ctx context.Context) ([]domain.Shop, error) {
	var shops []domain.Shop
	if err := c.get(ctx, "/api/v1/shops", &shops); err != nil {
		return nil, err
	}
	return shops, nil
}

// GetShop returns a single shop by ID.
func (c *Client) GetShop(ctx context.Context, id string) (*domain.Shop, error) {
	var shop domain.Shop
	if err := c.get(ctx, "/api/v1/shops/"+url.PathEscape(id), &shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

// UpdateShopSettings replaces a shop's settings.
func (c *Client) UpdateShopSettings(
	ctx context.Context,
	id string,
	settings *pricing.ShopSettings,
) (*domain.Shop, error) {
	var shop domain.Shop
	if err := c.put(ctx, "/api/v1/shops/"+url.PathEscape(id)+"/settings", settings, &shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

// UpsertCustomer creates or replaces a customer's loyalty profile.
func (c *Client) UpsertCustomer(ctx context.Context, cust *domain.Customer) (*domain.Customer, error) {
	body := struct {
		Name    string                  `json:"name,omitempty"`
		Profile pricing.CustomerProfile `json:"profile"`
	}{Name: cust.Name, Profile: cust.Profile}

	var out domain.Customer
	if err := c.put(ctx, customerPath(cust.ShopID, cust.ID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCustomer returns a single customer.
func (c *Client) GetCustomer(ctx context.Context, shopID, id string) (*domain.Customer, error) {
	var out domain.Customer
	if err := c.get(ctx, customerPath(shopID, id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func customerPath(shopID, id string) string {
	return fmt.Sprintf("/api/v1/shops/%s/customers/%s", url.PathEscape(shopID), url.PathEscape(id))
}
