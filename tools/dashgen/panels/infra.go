package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CacheHitRatio returns a gauge panel showing the shop settings cache hit
// ratio.
func CacheHitRatio() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("Settings Cache Hit Ratio").
		Description("Shop settings served from redis over the last 5 minutes").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`ipe:cache_hit_ratio:rate5m`, "", "A")).
		Unit("percentunit").
		Min(0).
		Max(1).
		Thresholds(ThresholdsRedGreen(0.8)).
		ColorScheme(ColorSchemeThresholds())
}

// EventsPublished returns a timeseries panel showing estimate events
// published and failed per second.
func EventsPublished() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Estimate Events").
		Description("Estimate events published to NATS and publish failures").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`rate(ipe_events_published_total[5m])`, "published", "A")).
		WithTarget(PromQuery(`rate(ipe_event_publish_failures_total[5m])`, "failed", "B")).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
