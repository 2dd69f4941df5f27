package client

import (
	"context"

	"github.com/donaldgifford/inspection-pricing/internal/engine"
	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
)

// Calculate prices resolved params on the server without storing anything.
func (c *Client) Calculate(ctx context.Context, params *pricing.PricingParams) (*engine.Calculation, error) {
	var calc engine.Calculation
	if err := c.post(ctx, "/api/v1/pricing/calculate", params, &calc); err != nil {
		return nil, err
	}
	return &calc, nil
}

// VehicleFactors derives pricing factors for a vehicle. A zero currentYear
// lets the server use this year.
func (c *Client) VehicleFactors(
	ctx context.Context,
	vehicle *pricing.VehicleSpecs,
	currentYear int,
) (*pricing.VehicleSpecs, error) {
	body := struct {
		Vehicle     *pricing.VehicleSpecs `json:"vehicle"`
		CurrentYear int                   `json:"current_year,omitempty"`
	}{Vehicle: vehicle, CurrentYear: currentYear}

	var out pricing.VehicleSpecs
	if err := c.post(ctx, "/api/v1/pricing/vehicle-factors", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Defaults returns the settings a new shop starts with.
func (c *Client) Defaults(ctx context.Context) (*pricing.ShopSettings, error) {
	var s pricing.ShopSettings
	if err := c.get(ctx, "/api/v1/pricing/defaults", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
