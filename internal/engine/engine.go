// Package engine orchestrates estimate pricing: it resolves shop, customer,
// and market inputs from the store, runs the pure pricing functions, persists
// the result, and announces it.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/inspection-pricing/internal/cache"
	"github.com/donaldgifford/inspection-pricing/internal/metrics"
	"github.com/donaldgifford/inspection-pricing/internal/notify"
	"github.com/donaldgifford/inspection-pricing/internal/store"
	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

const instrumentationName = "github.com/donaldgifford/inspection-pricing/internal/engine"

// Sentinel errors returned by engine operations. Callers match them with
// errors.Is; the wrapped message carries the detail.
var (
	ErrNotFound        = errors.New("not found")
	ErrUnknownService  = errors.New("unknown service package")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrInvalidParams   = errors.New("invalid pricing params")
	ErrInvalidSettings = errors.New("invalid shop settings")
)

// Engine prices estimates for shops.
type Engine struct {
	store     store.Store
	cache     cache.Cache
	publisher notify.Publisher
	log       *slog.Logger
	clock     func() time.Time
	validate  *validator.Validate

	surgePricing     bool
	surgeThreshold   float64
	strictValidation bool
	defaultTechCount int

	tracer     trace.Tracer
	quoteTotal metric.Float64Histogram
}

// NewEngine creates a new Engine backed by s.
func NewEngine(s store.Store, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:            s,
		cache:            cache.NewNoopCache(),
		log:              slog.Default(),
		clock:            time.Now,
		validate:         validator.New(validator.WithRequiredStructEnabled()),
		surgeThreshold:   pricing.DefaultWorkloadSurgeThreshold,
		defaultTechCount: 1,
		tracer:           otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.publisher == nil {
		eng.publisher = notify.NewNoOpPublisher(eng.log)
	}

	hist, err := otel.Meter(instrumentationName).Float64Histogram(
		"ipe.quote.total",
		metric.WithDescription("Quoted estimate totals."),
		metric.WithUnit("USD"),
	)
	if err != nil {
		eng.log.Warn("creating quote total histogram", "error", err)
	}
	eng.quoteTotal = hist

	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithCache sets the shop cache. The default never caches.
func WithCache(c cache.Cache) EngineOption {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithPublisher sets the estimate event publisher. The default only logs.
func WithPublisher(p notify.Publisher) EngineOption {
	return func(e *Engine) {
		e.publisher = p
	}
}

// WithClock overrides the time source used for vehicle age and market days.
func WithClock(fn func() time.Time) EngineOption {
	return func(e *Engine) {
		e.clock = fn
	}
}

// WithSurgePricing enables booking-based workload surge. threshold is the
// utilization at which surge starts for shops that do not set their own.
func WithSurgePricing(threshold float64) EngineOption {
	return func(e *Engine) {
		e.surgePricing = true
		if threshold > 0 {
			e.surgeThreshold = threshold
		}
	}
}

// WithStrictValidation makes Quote reject params that fail validation
// instead of recording the failures on the estimate.
func WithStrictValidation(strict bool) EngineOption {
	return func(e *Engine) {
		e.strictValidation = strict
	}
}

// WithDefaultTechCount sets the technician count used when a request omits one.
func WithDefaultTechCount(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.defaultTechCount = n
		}
	}
}

// Ping checks that the backing store is reachable.
func (eng *Engine) Ping(ctx context.Context) error {
	return eng.store.Ping(ctx)
}

// loadShop returns a shop through the cache. Cache failures are logged and
// fall through to the store.
func (eng *Engine) loadShop(ctx context.Context, id string) (*domain.Shop, error) {
	shop, ok, err := eng.cache.GetShop(ctx, id)
	if err != nil {
		eng.log.Warn("shop cache read failed", "shop", id, "error", err)
	}
	if ok {
		metrics.CacheHitsTotal.Inc()
		return shop, nil
	}
	metrics.CacheMissesTotal.Inc()

	shop, err = eng.store.GetShop(ctx, id)
	if err != nil {
		return nil, notFound(err, "shop %s", id)
	}

	if err := eng.cache.SetShop(ctx, shop); err != nil {
		eng.log.Warn("shop cache write failed", "shop", id, "error", err)
	}
	return shop, nil
}

// notFound maps pgx.ErrNoRows to ErrNotFound and wraps everything else.
func notFound(err error, format string, args ...any) error {
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("getting %s: %w", what, err)
}

// validationError flattens validator output into one wrapped sentinel error.
func validationError(sentinel, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", sentinel, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
