package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRateLimitedTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, EstimatesTotal)
	assert.NotNil(t, EstimateTotalDistribution)
	assert.NotNil(t, QuoteDuration)
	assert.NotNil(t, ValidationFailuresTotal)
	assert.NotNil(t, FormulaDivergenceTotal)
	assert.NotNil(t, MarketRefreshTotal)
	assert.NotNil(t, MarketRefreshErrorsTotal)
	assert.NotNil(t, MarketRefreshDuration)
	assert.NotNil(t, CacheHitsTotal)
	assert.NotNil(t, CacheMissesTotal)
	assert.NotNil(t, EventsPublishedTotal)
	assert.NotNil(t, EventPublishFailuresTotal)
}

func TestEstimatesTotal_ByShop(t *testing.T) {
	t.Parallel()

	before := testutil.ToFloat64(EstimatesTotal.WithLabelValues("metrics-test-shop"))
	EstimatesTotal.WithLabelValues("metrics-test-shop").Inc()

	assert.InDelta(t, before+1, testutil.ToFloat64(EstimatesTotal.WithLabelValues("metrics-test-shop")), 1e-9)
}
