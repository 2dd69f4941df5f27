package main

import "errors"

// KnownMetrics is the set of metric names exported by inspection-pricing
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"ipe_http_request_duration_seconds": true,
	"ipe_http_requests_total":           true,
	"ipe_http_rate_limited_total":       true,

	// Health metrics.
	"ipe_healthz_up": true,
	"ipe_readyz_up":  true,

	// Estimate metrics.
	"ipe_estimates_total":           true,
	"ipe_estimate_total_dollars":    true,
	"ipe_quote_duration_seconds":    true,
	"ipe_validation_failures_total": true,
	"ipe_formula_divergence_total":  true,

	// Market snapshot metrics.
	"ipe_market_refresh_snapshots_total":  true,
	"ipe_market_refresh_errors_total":     true,
	"ipe_market_refresh_duration_seconds": true,

	// Cache and event metrics.
	"ipe_cache_hits_total":             true,
	"ipe_cache_misses_total":           true,
	"ipe_events_published_total":       true,
	"ipe_event_publish_failures_total": true,

	// Recording rules.
	"ipe:http_requests:rate5m":       true,
	"ipe:http_errors:rate5m":         true,
	"ipe:estimates:rate5m":           true,
	"ipe:validation_failures:rate5m": true,
	"ipe:formula_divergence:rate5m":  true,
	"ipe:cache_hit_ratio:rate5m":     true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
