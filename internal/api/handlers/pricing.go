package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/inspection-pricing/internal/engine"
	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
)

// Calculator prices fully resolved params without side effects.
type Calculator interface {
	Calculate(params pricing.PricingParams) engine.Calculation
}

// PricingHandler serves the stateless pricing endpoints.
type PricingHandler struct {
	calc Calculator
	now  func() time.Time
}

// NewPricingHandler creates a new PricingHandler.
func NewPricingHandler(c Calculator) *PricingHandler {
	return &PricingHandler{calc: c, now: time.Now}
}

// CalculateInput is the request body for a stateless price calculation.
type CalculateInput struct {
	Body pricing.PricingParams
}

// CalculateOutput is the response body for a stateless price calculation.
type CalculateOutput struct {
	Body engine.Calculation
}

// VehicleFactorsInput is the request body for deriving vehicle factors.
type VehicleFactorsInput struct {
	Body struct {
		Vehicle     pricing.VehicleSpecs `json:"vehicle"                doc:"Decoded vehicle specs"`
		CurrentYear int                  `json:"current_year,omitempty" doc:"Year to age the vehicle against (default: this year)" minimum:"1900"`
	}
}

// VehicleFactorsOutput returns the specs with their derived factors.
type VehicleFactorsOutput struct {
	Body pricing.VehicleSpecs
}

// DefaultsOutput returns the settings a new shop starts with.
type DefaultsOutput struct {
	Body pricing.ShopSettings
}

// Calculate prices params with both formulas and reports validation
// problems and whether the formulas disagree.
func (h *PricingHandler) Calculate(
	_ context.Context,
	input *CalculateInput,
) (*CalculateOutput, error) {
	return &CalculateOutput{Body: h.calc.Calculate(input.Body)}, nil
}

// VehicleFactors derives the age, size, complexity, and specialty factors
// for a vehicle.
func (h *PricingHandler) VehicleFactors(
	_ context.Context,
	input *VehicleFactorsInput,
) (*VehicleFactorsOutput, error) {
	year := input.Body.CurrentYear
	if year == 0 {
		year = h.now().Year()
	}
	return &VehicleFactorsOutput{Body: pricing.DeriveVehicleFactors(input.Body.Vehicle, year)}, nil
}

// Defaults returns the default shop settings and service catalog.
func (*PricingHandler) Defaults(
	_ context.Context,
	_ *struct{},
) (*DefaultsOutput, error) {
	return &DefaultsOutput{Body: pricing.DefaultShopSettings()}, nil
}

// RegisterPricingRoutes registers the stateless pricing endpoints with the
// Huma API.
func RegisterPricingRoutes(api huma.API, h *PricingHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "calculate-price",
		Method:      http.MethodPost,
		Path:        "/api/v1/pricing/calculate",
		Summary:     "Calculate a price from resolved params",
		Description: "Runs the estimate calculator and the price breakdown on fully resolved params. " +
			"Nothing is stored. Validation problems are reported, not enforced.",
		Tags:   []string{"pricing"},
		Errors: []int{http.StatusUnprocessableEntity},
	}, h.Calculate)

	huma.Register(api, huma.Operation{
		OperationID: "derive-vehicle-factors",
		Method:      http.MethodPost,
		Path:        "/api/v1/pricing/vehicle-factors",
		Summary:     "Derive vehicle pricing factors",
		Description: "Returns the vehicle with age, size, complexity, and specialty factors filled in.",
		Tags:        []string{"pricing"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.VehicleFactors)

	huma.Register(api, huma.Operation{
		OperationID: "get-pricing-defaults",
		Method:      http.MethodGet,
		Path:        "/api/v1/pricing/defaults",
		Summary:     "Get default shop settings",
		Description: "Returns the rates, multiplier tables, and service catalog a new shop starts with.",
		Tags:        []string{"pricing"},
	}, h.Defaults)
}
