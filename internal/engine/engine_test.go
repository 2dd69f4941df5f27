package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cacheMocks "github.com/donaldgifford/inspection-pricing/internal/cache/mocks"
	"github.com/donaldgifford/inspection-pricing/internal/metrics"
	"github.com/donaldgifford/inspection-pricing/internal/notify"
	notifyMocks "github.com/donaldgifford/inspection-pricing/internal/notify/mocks"
	storeMocks "github.com/donaldgifford/inspection-pricing/internal/store/mocks"
	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

// fixedNow is mid-June, so the seasonal factor is the summer 1.20.
var fixedNow = time.Date(2026, time.June, 15, 14, 30, 0, 0, time.UTC)

var today = time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(
	t *testing.T,
	opts ...EngineOption,
) (*Engine, *storeMocks.MockStore, *notifyMocks.MockPublisher) {
	t.Helper()

	ms := storeMocks.NewMockStore(t)
	mp := notifyMocks.NewMockPublisher(t)
	base := []EngineOption{
		WithLogger(quietLogger()),
		WithPublisher(mp),
		WithClock(func() time.Time { return fixedNow }),
	}
	return NewEngine(ms, append(base, opts...)...), ms, mp
}

func testShop(id string) *domain.Shop {
	return &domain.Shop{
		ID:            id,
		Name:          "Main Street Detail",
		DailyCapacity: 10,
		Settings:      pricing.DefaultShopSettings(),
	}
}

func quoteRequest(shopID string) *QuoteRequest {
	return &QuoteRequest{
		ShopID:       shopID,
		InspectionID: "insp-1",
		ServiceSKU:   "basic-wash",
		Vehicle: pricing.VehicleSpecs{
			Year:      2020,
			Make:      "Toyota",
			Model:     "Camry",
			BodyClass: "Sedan/Saloon",
			DriveType: "FWD",
			Cylinders: 4,
			FuelType:  "Gasoline",
		},
	}
}

// expectPersist makes CreateEstimate assign an ID the way the store does.
func expectPersist(ms *storeMocks.MockStore, id string) {
	ms.EXPECT().CreateEstimate(mock.Anything, mock.AnythingOfType("*domain.Estimate")).
		Run(func(_ context.Context, e *domain.Estimate) {
			e.ID = id
			e.CreatedAt = fixedNow
		}).
		Return(nil).Once()
}

func TestNewEngine_Defaults(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := NewEngine(ms)

	assert.NotNil(t, eng.log)
	assert.NotNil(t, eng.cache)
	assert.NotNil(t, eng.publisher)
	assert.NotNil(t, eng.quoteTotal)
	assert.False(t, eng.surgePricing)
	assert.False(t, eng.strictValidation)
	assert.InDelta(t, pricing.DefaultWorkloadSurgeThreshold, eng.surgeThreshold, 1e-12)
	assert.Equal(t, 1, eng.defaultTechCount)
}

func TestNewEngine_WithOptions(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := cacheMocks.NewMockCache(t)
	mp := notifyMocks.NewMockPublisher(t)
	l := quietLogger()

	eng := NewEngine(ms,
		WithLogger(l),
		WithCache(mc),
		WithPublisher(mp),
		WithSurgePricing(0.7),
		WithStrictValidation(true),
		WithDefaultTechCount(3),
	)

	assert.Same(t, l, eng.log)
	assert.Same(t, mc, eng.cache)
	assert.Same(t, mp, eng.publisher)
	assert.True(t, eng.surgePricing)
	assert.InDelta(t, 0.7, eng.surgeThreshold, 1e-12)
	assert.True(t, eng.strictValidation)
	assert.Equal(t, 3, eng.defaultTechCount)
}

func TestNewEngine_IgnoresNonPositiveOptions(t *testing.T) {
	t.Parallel()

	eng := NewEngine(storeMocks.NewMockStore(t),
		WithSurgePricing(0),
		WithDefaultTechCount(0),
	)

	assert.True(t, eng.surgePricing)
	assert.InDelta(t, pricing.DefaultWorkloadSurgeThreshold, eng.surgeThreshold, 1e-12)
	assert.Equal(t, 1, eng.defaultTechCount)
}

func TestCalculate(t *testing.T) {
	t.Parallel()

	eng, _, _ := newTestEngine(t)

	params := pricing.PricingParams{
		BasePrice:        45,
		DefaultDuration:  1.5,
		TechCount:        1,
		LaborRate:        75,
		SkillMarkup:      0.2,
		FilthinessFactor: 1.0,
		WorkloadFactor:   1.0,
		WeatherFactor:    1.0,
		SeasonalFactor:   1.0,
	}

	got := eng.Calculate(params)

	assert.InDelta(t, pricing.CalculateEstimate(params), got.Estimate, 1e-9)
	assert.Equal(t, pricing.GeneratePriceBreakdown(params), got.Breakdown)
	assert.Equal(t, pricing.Diverges(params), got.Divergent)
	assert.Empty(t, got.ValidationErrors)
}

func TestCalculate_ReportsValidationFailures(t *testing.T) {
	t.Parallel()

	eng, _, _ := newTestEngine(t)

	before := ptestutil.ToFloat64(metrics.ValidationFailuresTotal)
	got := eng.Calculate(pricing.PricingParams{BasePrice: 45, DefaultDuration: 1, LaborRate: 75})

	assert.Equal(t, []string{"tech count must be greater than 0"}, got.ValidationErrors)
	assert.GreaterOrEqual(t, ptestutil.ToFloat64(metrics.ValidationFailuresTotal), before+1)
}

func TestQuote_PricesPersistsAndPublishes(t *testing.T) {
	t.Parallel()

	eng, ms, mp := newTestEngine(t)
	shop := testShop("shop-quote")

	ms.EXPECT().GetShop(mock.Anything, shop.ID).Return(shop, nil).Once()
	ms.EXPECT().GetMarketSnapshot(mock.Anything, shop.ID, today).Return(nil, pgx.ErrNoRows).Once()
	expectPersist(ms, "est-1")
	mp.EXPECT().PublishEstimate(mock.Anything, mock.MatchedBy(func(ev notify.EstimateEvent) bool {
		return ev.EstimateID == "est-1" && ev.ShopID == shop.ID && ev.ServiceSKU == "basic-wash"
	})).Return(nil).Once()

	before := ptestutil.ToFloat64(metrics.EstimatesTotal.WithLabelValues(shop.ID))

	est, err := eng.Quote(context.Background(), quoteRequest(shop.ID))
	require.NoError(t, err)

	assert.Equal(t, "est-1", est.ID)
	assert.Equal(t, domain.EstimateDraft, est.Status)
	assert.Equal(t, "insp-1", est.InspectionID)
	assert.InDelta(t, pricing.CalculateEstimate(est.Params), est.Total, 1e-9)
	assert.Equal(t, pricing.GeneratePriceBreakdown(est.Params), est.Breakdown)
	assert.Empty(t, est.ValidationErrors)

	// Neutral market for June, default tech count and filthiness.
	assert.InDelta(t, 1.20, est.Params.SeasonalFactor, 1e-12)
	assert.InDelta(t, 1.0, est.Params.WeatherFactor, 1e-12)
	assert.InDelta(t, 1.0, est.Params.WorkloadFactor, 1e-12)
	assert.Equal(t, 1, est.Params.TechCount)
	assert.InDelta(t, 1.0, est.Params.FilthinessFactor, 1e-12)
	assert.InDelta(t, 45.0, est.Params.BasePrice, 1e-12)
	assert.InDelta(t, 0.0, est.Params.MembershipDiscount, 1e-12)

	// Vehicle factors are derived and stored with the estimate.
	assert.InDelta(t, pricing.AgeFactor(2020, 2026), est.Vehicle.AgeFactor, 1e-12)
	assert.InDelta(t, est.Vehicle.SizeFactor, est.Params.BodyFactor, 1e-12)

	assert.InDelta(t, before+1, ptestutil.ToFloat64(metrics.EstimatesTotal.WithLabelValues(shop.ID)), 1e-9)
}

func TestQuote_CustomerLoyalty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		customer     *domain.Customer
		err          error
		wantDiscount float64
		wantCredit   float64
	}{
		{
			name: "gold member with points",
			customer: &domain.Customer{
				ID:      "cust-1",
				Profile: pricing.CustomerProfile{MembershipTier: pricing.TierGold, LoyaltyPoints: 1000},
			},
			wantDiscount: 0.10,
			wantCredit:   10,
		},
		{
			name: "points beyond the cap",
			customer: &domain.Customer{
				ID:      "cust-1",
				Profile: pricing.CustomerProfile{MembershipTier: pricing.TierBronze, LoyaltyPoints: 90_000},
			},
			wantDiscount: 0.05,
			wantCredit:   pricing.MaxLoyaltyCredit,
		},
		{
			name: "unknown customer prices without loyalty",
			err:  pgx.ErrNoRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			eng, ms, mp := newTestEngine(t)
			shop := testShop("shop-loyalty")

			ms.EXPECT().GetShop(mock.Anything, shop.ID).Return(shop, nil).Once()
			ms.EXPECT().GetCustomer(mock.Anything, shop.ID, "cust-1").Return(tt.customer, tt.err).Once()
			ms.EXPECT().GetMarketSnapshot(mock.Anything, shop.ID, today).Return(nil, pgx.ErrNoRows).Once()
			expectPersist(ms, "est-loyal")
			mp.EXPECT().PublishEstimate(mock.Anything, mock.Anything).Return(nil).Once()

			req := quoteRequest(shop.ID)
			req.CustomerID = "cust-1"

			est, err := eng.Quote(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, "cust-1", est.CustomerID)
			assert.InDelta(t, tt.wantDiscount, est.Params.MembershipDiscount, 1e-12)
			assert.InDelta(t, tt.wantCredit, est.Params.LoyaltyCredit, 1e-12)
		})
	}
}

func TestQuote_CustomerLookupError(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)
	shop := testShop("shop-custerr")

	ms.EXPECT().GetShop(mock.Anything, shop.ID).Return(shop, nil).Once()
	ms.EXPECT().GetCustomer(mock.Anything, shop.ID, "cust-1").Return(nil, errors.New("connection reset")).Once()

	req := quoteRequest(shop.ID)
	req.CustomerID = "cust-1"

	_, err := eng.Quote(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getting customer cust-1")
}

func TestQuote_StoredMarketSnapshot(t *testing.T) {
	t.Parallel()

	eng, ms, mp := newTestEngine(t)
	shop := testShop("shop-market")

	snap := &domain.MarketSnapshot{
		ShopID:  shop.ID,
		Day:     today,
		Weather: pricing.WeatherRain,
		Conditions: pricing.MarketConditions{
			WeatherFactor:   1.08,
			SeasonalDemand:  1.20,
			CompetitorIndex: 0.05,
			LocalDemand:     1.1,
		},
	}

	ms.EXPECT().GetShop(mock.Anything, shop.ID).Return(shop, nil).Once()
	ms.EXPECT().GetMarketSnapshot(mock.Anything, shop.ID, today).Return(snap, nil).Once()
	expectPersist(ms, "est-market")
	mp.EXPECT().PublishEstimate(mock.Anything, mock.Anything).Return(nil).Once()

	est, err := eng.Quote(context.Background(), quoteRequest(shop.ID))
	require.NoError(t, err)

	assert.InDelta(t, 1.08, est.Params.WeatherFactor, 1e-12)
	assert.InDelta(t, 0.05, est.Params.CompetitorFactor, 1e-12)
	assert.InDelta(t, 1.1, est.Params.WorkloadFactor, 1e-12, "local demand drives workload without surge pricing")
}

func TestQuote_SurgePricing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bookings int
		want     float64
	}{
		{name: "below threshold", bookings: 5, want: 1.0},
		{name: "at threshold", bookings: 8, want: 1.1},
		{name: "ninety percent", bookings: 9, want: 1.2},
		{name: "fully booked", bookings: 10, want: 1.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			eng, ms, mp := newTestEngine(t, WithSurgePricing(0.8))
			shop := testShop("shop-surge")

			ms.EXPECT().GetShop(mock.Anything, shop.ID).Return(shop, nil).Once()
			ms.EXPECT().GetMarketSnapshot(mock.Anything, shop.ID, today).Return(nil, pgx.ErrNoRows).Once()
			expectPersist(ms, "est-surge")
			mp.EXPECT().PublishEstimate(mock.Anything, mock.Anything).Return(nil).Once()

			req := quoteRequest(shop.ID)
			req.CurrentBookings = tt.bookings

			est, err := eng.Quote(context.Background(), req)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, est.Params.WorkloadFactor, 1e-12)
		})
	}
}

func TestQuote_RequestOverrides(t *testing.T) {
	t.Parallel()

	eng, ms, mp := newTestEngine(t, WithDefaultTechCount(2))
	shop := testShop("shop-overrides")

	ms.EXPECT().GetShop(mock.Anything, shop.ID).Return(shop, nil).Once()
	ms.EXPECT().GetMarketSnapshot(mock.Anything, shop.ID, today).Return(nil, pgx.ErrNoRows).Once()
	expectPersist(ms, "est-override")
	mp.EXPECT().PublishEstimate(mock.Anything, mock.Anything).Return(nil).Once()

	hrs := 3.0
	req := quoteRequest(shop.ID)
	req.ServiceSKU = "interior-detail"
	req.Filthiness = pricing.FilthinessExtreme
	req.DurationHrs = &hrs
	req.Damages = pricing.DamageMetrics{Count: 2, AverageSeverity: 0.5, TotalArea: 1.5}

	est, err := eng.Quote(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, est.Params.DurationHrs)
	assert.InDelta(t, 3.0, *est.Params.DurationHrs, 1e-12)
	assert.InDelta(t, 2.5, est.Params.DefaultDuration, 1e-12)
	assert.Equal(t, 2, est.Params.TechCount)
	assert.InDelta(t, 1.8, est.Params.FilthinessFactor, 1e-12)
	assert.InDelta(t, 0.03, est.Params.AreaFactor, 1e-12)
	assert.InDelta(t, 0.5*0.05+math.Log(3)*0.02+0.015, est.Params.DamageFactor, 1e-12)
}

func TestQuote_InvalidRequest(t *testing.T) {
	t.Parallel()

	negative := -1.0

	tests := []struct {
		name    string
		mutate  func(r *QuoteRequest)
		wantMsg string
	}{
		{
			name:    "missing shop",
			mutate:  func(r *QuoteRequest) { r.ShopID = "" },
			wantMsg: "ShopID is required",
		},
		{
			name:    "missing service",
			mutate:  func(r *QuoteRequest) { r.ServiceSKU = "" },
			wantMsg: "ServiceSKU is required",
		},
		{
			name:    "unknown filthiness",
			mutate:  func(r *QuoteRequest) { r.Filthiness = "filthy" },
			wantMsg: "Filthiness must be one of",
		},
		{
			name:    "severity above one",
			mutate:  func(r *QuoteRequest) { r.Damages.AverageSeverity = 1.5 },
			wantMsg: "Damages.AverageSeverity must be at most 1",
		},
		{
			name:    "negative duration",
			mutate:  func(r *QuoteRequest) { r.DurationHrs = &negative },
			wantMsg: "DurationHrs must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// No store expectations: validation happens before any lookup.
			eng, _, _ := newTestEngine(t)

			req := quoteRequest("shop-invalid")
			tt.mutate(req)

			_, err := eng.Quote(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidRequest)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestQuote_ShopNotFound(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)
	ms.EXPECT().GetShop(mock.Anything, "missing").Return(nil, pgx.ErrNoRows).Once()

	_, err := eng.Quote(context.Background(), quoteRequest("missing"))
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "shop missing")
}

func TestQuote_UnknownService(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)
	shop := testShop("shop-sku")
	ms.EXPECT().GetShop(mock.Anything, shop.ID).Return(shop, nil).Once()

	req := quoteRequest(shop.ID)
	req.ServiceSKU = "ceramic-coat"

	_, err := eng.Quote(context.Background(), req)
	require.ErrorIs(t, err, ErrUnknownService)
	assert.Contains(t, err.Error(), `"ceramic-coat"`)
}

func TestQuote_ValidationFailures(t *testing.T) {
	t.Parallel()

	broken := func(id string) *domain.Shop {
		s := testShop(id)
		s.Settings.LaborRate = 0
		return s
	}

	t.Run("recorded on the estimate by default", func(t *testing.T) {
		t.Parallel()

		eng, ms, mp := newTestEngine(t)
		shop := broken("shop-lenient")

		ms.EXPECT().GetShop(mock.Anything, shop.ID).Return(shop, nil).Once()
		ms.EXPECT().GetMarketSnapshot(mock.Anything, shop.ID, today).Return(nil, pgx.ErrNoRows).Once()
		expectPersist(ms, "est-lenient")
		mp.EXPECT().PublishEstimate(mock.Anything, mock.Anything).Return(nil).Once()

		est, err := eng.Quote(context.Background(), quoteRequest(shop.ID))
		require.NoError(t, err)
		assert.Equal(t, []string{"labor rate must be greater than 0"}, est.ValidationErrors)
	})

	t.Run("rejected in strict mode", func(t *testing.T) {
		t.Parallel()

		eng, ms, _ := newTestEngine(t, WithStrictValidation(true))
		shop := broken("shop-strict")

		ms.EXPECT().GetShop(mock.Anything, shop.ID).Return(shop, nil).Once()
		ms.EXPECT().GetMarketSnapshot(mock.Anything, shop.ID, today).Return(nil, pgx.ErrNoRows).Once()

		_, err := eng.Quote(context.Background(), quoteRequest(shop.ID))
		require.ErrorIs(t, err, ErrInvalidParams)
		assert.Contains(t, err.Error(), "labor rate must be greater than 0")
	})
}

func TestQuote_PersistError(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)
	shop := testShop("shop-persist")

	ms.EXPECT().GetShop(mock.Anything, shop.ID).Return(shop, nil).Once()
	ms.EXPECT().GetMarketSnapshot(mock.Anything, shop.ID, today).Return(nil, pgx.ErrNoRows).Once()
	ms.EXPECT().CreateEstimate(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	_, err := eng.Quote(context.Background(), quoteRequest(shop.ID))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving estimate")
}

func TestQuote_PublishFailureKeepsEstimate(t *testing.T) {
	t.Parallel()

	eng, ms, mp := newTestEngine(t)
	shop := testShop("shop-publish")

	ms.EXPECT().GetShop(mock.Anything, shop.ID).Return(shop, nil).Once()
	ms.EXPECT().GetMarketSnapshot(mock.Anything, shop.ID, today).Return(nil, pgx.ErrNoRows).Once()
	expectPersist(ms, "est-publish")
	mp.EXPECT().PublishEstimate(mock.Anything, mock.Anything).Return(errors.New("nats: timeout")).Once()

	before := ptestutil.ToFloat64(metrics.EventPublishFailuresTotal)

	est, err := eng.Quote(context.Background(), quoteRequest(shop.ID))
	require.NoError(t, err)
	assert.Equal(t, "est-publish", est.ID)
	assert.GreaterOrEqual(t, ptestutil.ToFloat64(metrics.EventPublishFailuresTotal), before+1)
}

func TestQuote_ShopCache(t *testing.T) {
	t.Parallel()

	t.Run("hit skips the store", func(t *testing.T) {
		t.Parallel()

		mc := cacheMocks.NewMockCache(t)
		eng, ms, mp := newTestEngine(t, WithCache(mc))
		shop := testShop("shop-cached")

		mc.EXPECT().GetShop(mock.Anything, shop.ID).Return(shop, true, nil).Once()
		ms.EXPECT().GetMarketSnapshot(mock.Anything, shop.ID, today).Return(nil, pgx.ErrNoRows).Once()
		expectPersist(ms, "est-hit")
		mp.EXPECT().PublishEstimate(mock.Anything, mock.Anything).Return(nil).Once()

		_, err := eng.Quote(context.Background(), quoteRequest(shop.ID))
		require.NoError(t, err)
	})

	t.Run("miss loads and fills", func(t *testing.T) {
		t.Parallel()

		mc := cacheMocks.NewMockCache(t)
		eng, ms, mp := newTestEngine(t, WithCache(mc))
		shop := testShop("shop-uncached")

		mc.EXPECT().GetShop(mock.Anything, shop.ID).Return(nil, false, nil).Once()
		ms.EXPECT().GetShop(mock.Anything, shop.ID).Return(shop, nil).Once()
		mc.EXPECT().SetShop(mock.Anything, shop).Return(nil).Once()
		ms.EXPECT().GetMarketSnapshot(mock.Anything, shop.ID, today).Return(nil, pgx.ErrNoRows).Once()
		expectPersist(ms, "est-miss")
		mp.EXPECT().PublishEstimate(mock.Anything, mock.Anything).Return(nil).Once()

		_, err := eng.Quote(context.Background(), quoteRequest(shop.ID))
		require.NoError(t, err)
	})

	t.Run("cache errors fall through", func(t *testing.T) {
		t.Parallel()

		mc := cacheMocks.NewMockCache(t)
		eng, ms, mp := newTestEngine(t, WithCache(mc))
		shop := testShop("shop-cache-down")

		mc.EXPECT().GetShop(mock.Anything, shop.ID).Return(nil, false, errors.New("redis down")).Once()
		ms.EXPECT().GetShop(mock.Anything, shop.ID).Return(shop, nil).Once()
		mc.EXPECT().SetShop(mock.Anything, shop).Return(errors.New("redis down")).Once()
		ms.EXPECT().GetMarketSnapshot(mock.Anything, shop.ID, today).Return(nil, pgx.ErrNoRows).Once()
		expectPersist(ms, "est-down")
		mp.EXPECT().PublishEstimate(mock.Anything, mock.Anything).Return(nil).Once()

		_, err := eng.Quote(context.Background(), quoteRequest(shop.ID))
		require.NoError(t, err)
	})
}
