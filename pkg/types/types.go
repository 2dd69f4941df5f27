// Package domain defines the persisted business records that surround the
// pricing engine: shops, customers, market snapshots, and estimates.
package domain

import (
	"time"

	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
)

// EstimateStatus is the lifecycle state of an estimate.
type EstimateStatus string

// Estimate status constants.
const (
	EstimateDraft    EstimateStatus = "draft"
	EstimateSent     EstimateStatus = "sent"
	EstimateApproved EstimateStatus = "approved"
	EstimateDeclined EstimateStatus = "declined"
)

// Valid reports whether s is a known status.
func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateDraft, EstimateSent, EstimateApproved, EstimateDeclined:
		return true
	default:
		return false
	}
}

// Shop is a tenant with its own pricing configuration.
type Shop struct {
	ID            string               `json:"id"             db:"id"`
	Name          string               `json:"name"           db:"name"`
	DailyCapacity int                  `json:"daily_capacity" db:"daily_capacity"`
	Settings      pricing.ShopSettings `json:"settings"       db:"settings"`
	CreatedAt     time.Time            `json:"created_at"     db:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"     db:"updated_at"`
}

// Customer is a shop's customer with loyalty state.
type Customer struct {
	ID        string                  `json:"id"         db:"id"`
	ShopID    string                  `json:"shop_id"    db:"shop_id"`
	Name      string                  `json:"name"       db:"name"`
	Profile   pricing.CustomerProfile `json:"profile"    db:"profile"`
	UpdatedAt time.Time               `json:"updated_at" db:"updated_at"`
}

// MarketSnapshot is a shop's market conditions for one calendar day.
type MarketSnapshot struct {
	ShopID     string                   `json:"shop_id"    db:"shop_id"`
	Day        time.Time                `json:"day"        db:"day"`
	Weather    pricing.WeatherCondition `json:"weather"    db:"weather"`
	Conditions pricing.MarketConditions `json:"conditions" db:"conditions"`
	CreatedAt  time.Time                `json:"created_at" db:"created_at"`
}

// Estimate is a priced estimate stored against an inspection, together with
// the params that produced it.
type Estimate struct {
	ID               string                 `json:"id"                          db:"id"`
	ShopID           string                 `json:"shop_id"                     db:"shop_id"`
	InspectionID     string                 `json:"inspection_id"               db:"inspection_id"`
	CustomerID       string                 `json:"customer_id,omitempty"       db:"customer_id"`
	ServiceSKU       string                 `json:"service_sku"                 db:"service_sku"`
	Status           EstimateStatus         `json:"status"                      db:"status"`
	Vehicle          pricing.VehicleSpecs   `json:"vehicle"                     db:"vehicle"`
	Params           pricing.PricingParams  `json:"params"                      db:"params"`
	Breakdown        pricing.PriceBreakdown `json:"breakdown"                   db:"breakdown"`
	Total            float64                `json:"total"                       db:"total"`
	Divergent        bool                   `json:"divergent"                   db:"divergent"`
	ValidationErrors []string               `json:"validation_errors,omitempty" db:"validation_errors"`
	CreatedAt        time.Time              `json:"created_at"                  db:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"                  db:"updated_at"`
}

// Day truncates t to midnight UTC, the key market snapshots are stored under.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
