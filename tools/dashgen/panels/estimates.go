package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// EstimatesRate returns a timeseries panel showing estimates priced per
// second, split by shop.
func EstimatesRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Estimates Rate").
		Description("Estimates priced per second by shop").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`sum by (shop) (rate(ipe_estimates_total[5m]))`, "{{shop}}", "A")).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// EstimateTotals returns a timeseries panel showing the median and p90 of
// quoted estimate totals.
func EstimateTotals() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Estimate Totals").
		Description("Median and p90 quoted estimate total").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(histogramQuantile(0.50, "ipe_estimate_total_dollars"), "p50", "A")).
		WithTarget(PromQuery(histogramQuantile(0.90, "ipe_estimate_total_dollars"), "p90", "B")).
		Unit("currencyUSD").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// QuoteLatency returns a timeseries panel showing the p95 quote duration,
// including persistence.
func QuoteLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Quote Latency (p95)").
		Description("95th percentile quote duration including persistence").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(histogramQuantile(0.95, "ipe_quote_duration_seconds"), "p95", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.25, 1)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ValidationFailures returns a timeseries panel showing the rate of pricing
// params rejected by validation.
func ValidationFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Validation Failures").
		Description("Pricing params failing validation per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`ipe:validation_failures:rate5m`, "failures/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FormulaDivergence returns a stat panel counting estimates whose breakdown
// disagreed with the quoted total in the past 24 hours.
func FormulaDivergence() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Formula Divergence (24h)").
		Description("Estimates whose breakdown total disagrees with the quoted total").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`increase(ipe_formula_divergence_total{job="`+Job+`"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
