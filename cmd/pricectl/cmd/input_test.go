package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/inspection-pricing/internal/engine"
	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadDocument_YAMLUsesJSONKeys(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "request.yaml", `
shop_id: shop-1
inspection_id: insp-1
service_sku: full-detail
filthiness: heavy
duration_hrs: 2.5
vehicle:
  year: 2018
  make: Subaru
  model: Outback
  body_class: Wagon
damages:
  count: 3
  average_severity: 0.4
`)

	var req engine.QuoteRequest
	require.NoError(t, readDocument(path, &req))

	assert.Equal(t, "shop-1", req.ShopID)
	assert.Equal(t, pricing.FilthinessHeavy, req.Filthiness)
	require.NotNil(t, req.DurationHrs)
	assert.InDelta(t, 2.5, *req.DurationHrs, 1e-12)
	assert.Equal(t, "Wagon", req.Vehicle.BodyClass)
	assert.Equal(t, 3, req.Damages.Count)
}

func TestReadDocument_JSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "params.json", `{"base_price": 80, "tech_count": 2}`)

	var p pricing.PricingParams
	require.NoError(t, readDocument(path, &p))
	assert.InDelta(t, 80.0, p.BasePrice, 1e-12)
	assert.Equal(t, 2, p.TechCount)
}

func TestReadDocument_Errors(t *testing.T) {
	t.Parallel()

	var p pricing.PricingParams

	err := readDocument(filepath.Join(t.TempDir(), "missing.yaml"), &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")

	err = readDocument(writeFile(t, "bad.yaml", "base_price: [unclosed"), &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")

	err = readDocument(writeFile(t, "wrong.yaml", "base_price: lots"), &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")
}
