// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/inspection-pricing/tools/dashgen/panels"
)

// BuildOverview constructs the Inspection Pricing overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Inspection Pricing Overview").
		Uid("ipe-overview").
		Tags([]string{"ipe", "inspection-pricing"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.EstimatesToday()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.RateLimited()))

	// Row 3: Estimates.
	b.WithRow(dashboard.NewRowBuilder("Estimates").
		WithPanel(panels.EstimatesRate()).
		WithPanel(panels.EstimateTotals()).
		WithPanel(panels.QuoteLatency()).
		WithPanel(panels.ValidationFailures()).
		WithPanel(panels.FormulaDivergence()))

	// Row 4: Market.
	b.WithRow(dashboard.NewRowBuilder("Market").
		WithPanel(panels.SnapshotsCreated()).
		WithPanel(panels.RefreshErrors()).
		WithPanel(panels.RefreshDuration()))

	// Row 5: Cache and events.
	b.WithRow(dashboard.NewRowBuilder("Cache & Events").
		WithPanel(panels.CacheHitRatio()).
		WithPanel(panels.EventsPublished()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
