package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/donaldgifford/inspection-pricing/internal/metrics"
	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

// MarketUpdate sets a shop's market inputs for one day. The weather and
// seasonal factors are derived; competitor pressure and local demand are
// taken as given.
type MarketUpdate struct {
	Day             time.Time                `json:"day"              required:"false"`
	Weather         pricing.WeatherCondition `json:"weather"                           validate:"required,oneof=clear rain snow extreme"`
	CompetitorIndex float64                  `json:"competitor_index" required:"false" validate:"gte=-1,lte=1"`
	LocalDemand     float64                  `json:"local_demand"     required:"false" validate:"gte=0"`
}

// MarketFor returns the shop's market snapshot for the day containing at.
// When none is stored it returns neutral conditions for that month and
// stored is false.
func (eng *Engine) MarketFor(
	ctx context.Context,
	shopID string,
	at time.Time,
) (snap *domain.MarketSnapshot, stored bool, err error) {
	day := domain.Day(at)

	snap, err = eng.store.GetMarketSnapshot(ctx, shopID, day)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.MarketSnapshot{
			ShopID:     shopID,
			Day:        day,
			Weather:    pricing.WeatherClear,
			Conditions: pricing.NeutralMarketConditions(day.Month()),
		}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("getting market snapshot: %w", err)
	}
	return snap, true, nil
}

// SetMarketConditions stores the market snapshot for one shop and day. A
// zero Day means today; a zero LocalDemand means neutral demand.
func (eng *Engine) SetMarketConditions(
	ctx context.Context,
	shopID string,
	u *MarketUpdate,
) (*domain.MarketSnapshot, error) {
	if err := eng.validate.Struct(u); err != nil {
		return nil, validationError(ErrInvalidRequest, err)
	}

	if _, err := eng.loadShop(ctx, shopID); err != nil {
		return nil, err
	}

	day := u.Day
	if day.IsZero() {
		day = eng.clock()
	}
	demand := u.LocalDemand
	if demand == 0 {
		demand = 1.0
	}

	snap := newSnapshot(shopID, domain.Day(day), u.Weather, u.CompetitorIndex, demand)
	if err := eng.store.UpsertMarketSnapshot(ctx, snap); err != nil {
		return nil, fmt.Errorf("saving market snapshot: %w", err)
	}

	eng.log.Info("market conditions set",
		"shop", shopID,
		"day", snap.Day.Format(time.DateOnly),
		"weather", snap.Weather,
	)
	return snap, nil
}

// RefreshMarketSnapshots makes sure every shop has a snapshot for today. A
// shop that already has one is left alone; otherwise competitor pressure and
// local demand carry forward from its latest snapshot, weather resets to
// clear, and the seasonal factor follows the calendar. Per-shop failures are
// logged and joined; the remaining shops are still refreshed.
func (eng *Engine) RefreshMarketSnapshots(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() {
		metrics.MarketRefreshDuration.Observe(time.Since(start).Seconds())
	}()

	shops, err := eng.store.ListShops(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing shops: %w", err)
	}

	today := domain.Day(eng.clock())

	var (
		created int
		errs    []error
	)
	for i := range shops {
		if ctx.Err() != nil {
			return created, ctx.Err()
		}

		ok, err := eng.refreshShop(ctx, shops[i].ID, today)
		if err != nil {
			metrics.MarketRefreshErrorsTotal.Inc()
			eng.log.Error("market refresh failed", "shop", shops[i].ID, "error", err)
			errs = append(errs, fmt.Errorf("shop %s: %w", shops[i].ID, err))
			continue
		}
		if ok {
			created++
			metrics.MarketRefreshTotal.Inc()
		}
	}

	eng.log.Info("market refresh complete",
		"shops", len(shops),
		"created", created,
		"failed", len(errs),
	)
	return created, errors.Join(errs...)
}

// refreshShop creates today's snapshot for one shop when missing and reports
// whether it did.
func (eng *Engine) refreshShop(ctx context.Context, shopID string, today time.Time) (bool, error) {
	_, err := eng.store.GetMarketSnapshot(ctx, shopID, today)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("getting market snapshot: %w", err)
	}

	competitor, demand := 0.0, 1.0
	latest, err := eng.store.GetLatestMarketSnapshot(ctx, shopID)
	switch {
	case err == nil:
		competitor = latest.Conditions.CompetitorIndex
		demand = latest.Conditions.LocalDemand
	case errors.Is(err, pgx.ErrNoRows):
	default:
		return false, fmt.Errorf("getting latest market snapshot: %w", err)
	}

	snap := newSnapshot(shopID, today, pricing.WeatherClear, competitor, demand)
	if err := eng.store.UpsertMarketSnapshot(ctx, snap); err != nil {
		return false, fmt.Errorf("saving market snapshot: %w", err)
	}
	return true, nil
}

func newSnapshot(
	shopID string,
	day time.Time,
	weather pricing.WeatherCondition,
	competitor, demand float64,
) *domain.MarketSnapshot {
	return &domain.MarketSnapshot{
		ShopID:  shopID,
		Day:     day,
		Weather: weather,
		Conditions: pricing.MarketConditions{
			WeatherFactor:   pricing.WeatherFactor(weather, nil),
			SeasonalDemand:  pricing.SeasonalFactor(day.Month()),
			CompetitorIndex: competitor,
			LocalDemand:     demand,
		},
	}
}
