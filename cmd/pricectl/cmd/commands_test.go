package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apiclient "github.com/donaldgifford/inspection-pricing/internal/api/client"
	"github.com/donaldgifford/inspection-pricing/internal/engine"
	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

// These tests share viper's global state and run sequentially.

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func useServer(t *testing.T, h http.Handler, output string) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	viper.Set("server", srv.URL)
	viper.Set("output", output)
	t.Cleanup(func() {
		viper.Set("server", "")
		viper.Set("output", "")
	})
}

const paramsYAML = `
base_price: 120
default_duration: 2
tech_count: 1
labor_rate: 75
skill_markup: 0.2
location_surcharge: 0.05
age_factor: 1
body_factor: 1
damage_factor: 1
area_factor: 1
filthiness_factor: 1
workload_factor: 1
weather_factor: 1
seasonal_factor: 1
competitor_factor: 0
`

func TestCalc_Offline(t *testing.T) {
	viper.Set("output", "json")
	t.Cleanup(func() { viper.Set("output", "") })

	path := writeFile(t, "params.yaml", paramsYAML)

	out, err := run(t, calcCmd(), "-f", path)
	require.NoError(t, err)

	var got engine.Calculation
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	var params pricing.PricingParams
	require.NoError(t, readDocument(path, &params))
	assert.InDelta(t, pricing.CalculateEstimate(params), got.Estimate, 1e-9)
	assert.Equal(t, pricing.Diverges(params), got.Divergent)
}

func TestCalc_Table(t *testing.T) {
	viper.Set("output", "table")
	t.Cleanup(func() { viper.Set("output", "") })

	out, err := run(t, calcCmd(), "-f", writeFile(t, "params.yaml", paramsYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "Estimate:")
	assert.Contains(t, out, "Labor")
	assert.Contains(t, out, "Total")
}

func TestCalc_RequiresFile(t *testing.T) {
	_, err := run(t, calcCmd())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--file is required")
}

func TestQuote_FlagsOverrideFile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/estimates", func(w http.ResponseWriter, r *http.Request) {
		var req engine.QuoteRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "shop-1", req.ShopID)
		assert.Equal(t, "ceramic-coat", req.ServiceSKU)
		assert.Equal(t, 9, req.CurrentBookings)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Estimate{ID: "est-7", ServiceSKU: req.ServiceSKU, Total: 410})
	})
	useServer(t, mux, "table")

	path := writeFile(t, "request.yaml", `
shop_id: shop-1
inspection_id: insp-1
service_sku: full-detail
vehicle: {year: 2020, make: Tesla, model: Model 3}
`)

	out, err := run(t, quoteCmd(), "-f", path, "--sku", "ceramic-coat", "--bookings", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "est-7")
	assert.Contains(t, out, "$410.00")
}

func TestEstimatesList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/estimates", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "approved", r.URL.Query().Get("status"))
		assert.Equal(t, "false", r.URL.Query().Get("divergent"))
		_ = json.NewEncoder(w).Encode(apiclient.EstimatesResponse{
			Estimates: []domain.Estimate{{ID: "est-1", Status: domain.EstimateApproved, Total: 99}},
			Total:     4,
		})
	})
	useServer(t, mux, "table")

	out, err := run(t, estimatesCmd(), "list", "--status", "approved", "--divergent", "false")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1 of 4 estimates")
	assert.Contains(t, out, "est-1")
}

func TestEstimatesList_BadDivergent(t *testing.T) {
	_, err := run(t, estimatesCmd(), "list", "--divergent", "maybe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --divergent")
}

func TestEstimatesStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /api/v1/estimates/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.Estimate{ID: r.PathValue("id"), Status: domain.EstimateSent})
	})
	useServer(t, mux, "table")

	out, err := run(t, estimatesCmd(), "status", "est-1", "sent")
	require.NoError(t, err)
	assert.Contains(t, out, "Estimate est-1 is now sent.")

	_, err = run(t, estimatesCmd(), "status", "est-1", "pending")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown status "pending"`)
}

func TestEstimatesExport(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/estimates", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1000", r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode(apiclient.EstimatesResponse{
			Estimates: []domain.Estimate{{ID: "est-1"}, {ID: "est-2"}},
			Total:     2,
		})
	})
	useServer(t, mux, "table")

	path := filepath.Join(t.TempDir(), "out.xlsx")
	out, err := run(t, estimatesCmd(), "export", "--xlsx", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 of 2 estimates")

	xl, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = xl.Close() })

	rows, err := xl.GetRows(estimatesSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestShopsList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/shops", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.Shop{
			{ID: "shop-1", Name: "Uptown Auto Spa", DailyCapacity: 12, Settings: pricing.DefaultShopSettings()},
		})
	})
	useServer(t, mux, "table")

	out, err := run(t, shopsCmd(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Uptown Auto Spa")
	assert.Contains(t, out, "$75.00")
}

func TestShopsSettings_Apply(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/v1/shops/{id}/settings", func(w http.ResponseWriter, r *http.Request) {
		var s pricing.ShopSettings
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&s))
		assert.InDelta(t, 92.0, s.LaborRate, 1e-12)
		_ = json.NewEncoder(w).Encode(domain.Shop{ID: r.PathValue("id"), Settings: s})
	})
	useServer(t, mux, "table")

	settings := pricing.DefaultShopSettings()
	settings.LaborRate = 92
	data, err := json.Marshal(settings)
	require.NoError(t, err)

	out, err := run(t, shopsCmd(), "settings", "shop-1", "-f", writeFile(t, "settings.json", string(data)))
	require.NoError(t, err)
	assert.Contains(t, out, "Updated settings for shop-1")
}

func TestMarketSet(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/v1/shops/{id}/market", func(w http.ResponseWriter, r *http.Request) {
		var u engine.MarketUpdate
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&u))
		assert.Equal(t, pricing.WeatherRain, u.Weather)
		assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), u.Day)

		_ = json.NewEncoder(w).Encode(apiclient.MarketResponse{
			Snapshot: &domain.MarketSnapshot{
				ShopID:  r.PathValue("id"),
				Day:     u.Day,
				Weather: u.Weather,
				Conditions: pricing.MarketConditions{
					WeatherFactor:   1.08,
					SeasonalDemand:  1.15,
					CompetitorIndex: u.CompetitorIndex,
					LocalDemand:     u.LocalDemand,
				},
			},
			Stored: true,
		})
	})
	useServer(t, mux, "table")

	out, err := run(t, marketCmd(), "set", "shop-1", "--weather", "rain", "--day", "2026-03-09", "--competitor", "-0.05")
	require.NoError(t, err)
	assert.Contains(t, out, "rain (x1.08)")
	assert.Contains(t, out, "-0.05")
	assert.Contains(t, out, "stored")
}

func TestMarketGet_BadDay(t *testing.T) {
	_, err := run(t, marketCmd(), "get", "shop-1", "--day", "03/09/2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want YYYY-MM-DD")
}

func TestMarketRefresh(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/market/refresh", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"created": 2})
	})
	useServer(t, mux, "table")

	out, err := run(t, marketCmd(), "refresh")
	require.NoError(t, err)
	assert.Contains(t, out, "Created 2 market snapshots.")
}
