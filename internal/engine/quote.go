package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/inspection-pricing/internal/metrics"
	"github.com/donaldgifford/inspection-pricing/internal/notify"
	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

// QuoteRequest asks for a priced estimate of one service on one inspected
// vehicle.
type QuoteRequest struct {
	ShopID          string                  `json:"shop_id"                    validate:"required"`
	InspectionID    string                  `json:"inspection_id"              validate:"required"`
	CustomerID      string                  `json:"customer_id,omitempty"`
	ServiceSKU      string                  `json:"service_sku"                validate:"required"`
	Vehicle         pricing.VehicleSpecs    `json:"vehicle"`
	Damages         pricing.DamageMetrics   `json:"damages"                    required:"false"`
	Filthiness      pricing.FilthinessLevel `json:"filthiness,omitempty"       validate:"omitempty,oneof=light moderate heavy extreme"`
	TechCount       int                     `json:"tech_count,omitempty"       validate:"gte=0"`
	DurationHrs     *float64                `json:"duration_hrs,omitempty"     validate:"omitempty,gt=0"`
	CurrentBookings int                     `json:"current_bookings,omitempty" validate:"gte=0"`
}

// Calculation is the result of pricing one set of params.
type Calculation struct {
	Estimate         float64                `json:"estimate"`
	Breakdown        pricing.PriceBreakdown `json:"breakdown"`
	Divergent        bool                   `json:"divergent"`
	ValidationErrors []string               `json:"validation_errors,omitempty"`
}

// Calculate prices params without touching the store. Validation failures
// are reported, never enforced.
func (eng *Engine) Calculate(params pricing.PricingParams) Calculation {
	c := Calculation{
		Estimate:         pricing.CalculateEstimate(params),
		Breakdown:        pricing.GeneratePriceBreakdown(params),
		Divergent:        pricing.Diverges(params),
		ValidationErrors: pricing.ValidatePricingParams(params),
	}

	if len(c.ValidationErrors) > 0 {
		metrics.ValidationFailuresTotal.Inc()
	}
	if c.Divergent {
		metrics.FormulaDivergenceTotal.Inc()
	}
	return c
}

// Quote builds params for req from the shop's settings, the customer's
// loyalty profile, and today's market snapshot, then prices, persists, and
// publishes the estimate.
func (eng *Engine) Quote(ctx context.Context, req *QuoteRequest) (*domain.Estimate, error) {
	start := time.Now()
	defer func() {
		metrics.QuoteDuration.Observe(time.Since(start).Seconds())
	}()

	if err := eng.validate.Struct(req); err != nil {
		return nil, validationError(ErrInvalidRequest, err)
	}

	ctx, span := eng.tracer.Start(ctx, "engine.Quote", trace.WithAttributes(
		attribute.String("shop.id", req.ShopID),
		attribute.String("service.sku", req.ServiceSKU),
	))
	defer span.End()

	est, err := eng.quote(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("estimate.id", est.ID),
		attribute.Float64("estimate.total", est.Total),
	)
	return est, nil
}

func (eng *Engine) quote(ctx context.Context, req *QuoteRequest) (*domain.Estimate, error) {
	now := eng.clock()

	shop, err := eng.loadShop(ctx, req.ShopID)
	if err != nil {
		return nil, err
	}

	pkg, ok := shop.Settings.Package(req.ServiceSKU)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not offered by shop %s", ErrUnknownService, req.ServiceSKU, shop.ID)
	}

	profile, err := eng.customerProfile(ctx, req.ShopID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	snap, _, err := eng.MarketFor(ctx, req.ShopID, now)
	if err != nil {
		return nil, err
	}

	vehicle := pricing.DeriveVehicleFactors(req.Vehicle, now.Year())
	params := pricing.BuildPricingParams(
		vehicle,
		req.Damages,
		pkg,
		shop.Settings,
		profile,
		snap.Conditions,
		eng.techCount(req.TechCount),
		filthiness(req.Filthiness),
	)
	if eng.surgePricing {
		params.WorkloadFactor = pricing.WorkloadFactor(
			req.CurrentBookings, shop.DailyCapacity, eng.threshold(&shop.Settings),
		)
	}
	if req.DurationHrs != nil {
		hrs := *req.DurationHrs
		params.DurationHrs = &hrs
	}

	calc := eng.Calculate(params)
	if eng.strictValidation && len(calc.ValidationErrors) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidParams, strings.Join(calc.ValidationErrors, "; "))
	}

	est := &domain.Estimate{
		ShopID:           req.ShopID,
		InspectionID:     req.InspectionID,
		CustomerID:       req.CustomerID,
		ServiceSKU:       req.ServiceSKU,
		Status:           domain.EstimateDraft,
		Vehicle:          vehicle,
		Params:           params,
		Breakdown:        calc.Breakdown,
		Total:            calc.Estimate,
		Divergent:        calc.Divergent,
		ValidationErrors: calc.ValidationErrors,
	}
	if err := eng.store.CreateEstimate(ctx, est); err != nil {
		return nil, fmt.Errorf("saving estimate: %w", err)
	}

	metrics.EstimatesTotal.WithLabelValues(req.ShopID).Inc()
	metrics.EstimateTotalDistribution.Observe(est.Total)
	if eng.quoteTotal != nil {
		eng.quoteTotal.Record(ctx, est.Total, metric.WithAttributes(
			attribute.String("shop.id", req.ShopID),
			attribute.String("service.sku", req.ServiceSKU),
		))
	}

	eng.log.Info("estimate priced",
		"estimate", est.ID,
		"shop", est.ShopID,
		"sku", est.ServiceSKU,
		"total", est.Total,
		"divergent", est.Divergent,
	)

	eng.publish(ctx, est)
	return est, nil
}

// publish announces est. A failed publish never fails the quote: the
// estimate is already persisted.
func (eng *Engine) publish(ctx context.Context, est *domain.Estimate) {
	if err := eng.publisher.PublishEstimate(ctx, notify.NewEstimateEvent(est)); err != nil {
		metrics.EventPublishFailuresTotal.Inc()
		eng.log.Error("publishing estimate event", "estimate", est.ID, "error", err)
		return
	}
	metrics.EventsPublishedTotal.Inc()
}

// customerProfile loads the loyalty profile for a customer. Anonymous and
// unknown customers price with no membership and no points.
func (eng *Engine) customerProfile(ctx context.Context, shopID, customerID string) (pricing.CustomerProfile, error) {
	anonymous := pricing.CustomerProfile{MembershipTier: pricing.TierNone}
	if customerID == "" {
		return anonymous, nil
	}

	c, err := eng.store.GetCustomer(ctx, shopID, customerID)
	if errors.Is(err, pgx.ErrNoRows) {
		eng.log.Debug("customer not found, pricing without loyalty", "shop", shopID, "customer", customerID)
		return anonymous, nil
	}
	if err != nil {
		return pricing.CustomerProfile{}, fmt.Errorf("getting customer %s: %w", customerID, err)
	}
	return c.Profile, nil
}

func (eng *Engine) techCount(requested int) int {
	if requested > 0 {
		return requested
	}
	return eng.defaultTechCount
}

func (eng *Engine) threshold(s *pricing.ShopSettings) float64 {
	if s.WorkloadSurgeThreshold > 0 {
		return s.WorkloadSurgeThreshold
	}
	return eng.surgeThreshold
}

func filthiness(level pricing.FilthinessLevel) pricing.FilthinessLevel {
	if level == "" {
		return pricing.FilthinessLight
	}
	return level
}
