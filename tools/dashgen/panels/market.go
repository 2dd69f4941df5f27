package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SnapshotsCreated returns a stat panel showing market snapshots created by
// the refresh job in the past 24 hours.
func SnapshotsCreated() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Snapshots Created (24h)").
		Description("Market snapshots created by the daily refresh").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`increase(ipe_market_refresh_snapshots_total[24h])`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}

// RefreshErrors returns a stat panel showing market refresh failures in the
// past 24 hours.
func RefreshErrors() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Refresh Errors (24h)").
		Description("Per-shop market refresh failures").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`increase(ipe_market_refresh_errors_total[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// RefreshDuration returns a timeseries panel showing the p95 market refresh
// run duration.
func RefreshDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Refresh Duration (p95)").
		Description("95th percentile market refresh run duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(histogramQuantile(0.95, "ipe_market_refresh_duration_seconds"), "p95", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
