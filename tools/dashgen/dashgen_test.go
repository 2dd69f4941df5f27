package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/inspection-pricing/tools/dashgen/dashboards"
	"github.com/donaldgifford/inspection-pricing/tools/dashgen/rules"
	"github.com/donaldgifford/inspection-pricing/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	// Verify dashboard metadata.
	require.NotNil(t, dash.Uid)
	assert.Equal(t, "ipe-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "Inspection Pricing Overview", *dash.Title)

	// Verify template variable.
	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	// Verify we have 5 rows.
	assert.Len(t, dash.Panels, 5)

	// Count total inner panels.
	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 18, totalPanels)

	// Validate PromQL and metrics.
	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "ipe-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "ipe-recording", group.Name)
	require.Len(t, group.Rules, 6)

	expectedRecords := []string{
		"ipe:http_requests:rate5m",
		"ipe:http_errors:rate5m",
		"ipe:estimates:rate5m",
		"ipe:validation_failures:rate5m",
		"ipe:formula_divergence:rate5m",
		"ipe:cache_hit_ratio:rate5m",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.True(t, KnownMetrics[rule.Record], "recording rule %s not in KnownMetrics", rule.Record)
	}

	result := validate.Exprs(ruleExprs(cr), KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)

	// Verify YAML marshaling works.
	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "ipe-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "ipe-alerts", group.Name)
	require.Len(t, group.Rules, 8)

	expectedAlerts := []string{
		"IpeDown",
		"IpeReadinessDown",
		"IpeHighErrorRate",
		"IpeFormulaDivergence",
		"IpeValidationFailures",
		"IpeMarketRefreshFailed",
		"IpeEventPublishFailures",
		"IpeRateLimiting",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Exprs(ruleExprs(cr), KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutputDir = dir

	require.NoError(t, run(cfg, false))

	dashJSON, err := os.ReadFile(filepath.Join(dir, "grafana", "data", "ipe-overview.json"))
	require.NoError(t, err)
	var dash map[string]any
	require.NoError(t, json.Unmarshal(dashJSON, &dash))
	assert.Equal(t, "ipe-overview", dash["uid"])

	for _, name := range []string{"ipe-recording-rules.yaml", "ipe-alerts.yaml"} {
		data, err := os.ReadFile(filepath.Join(dir, "prometheus", name))
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(string(data), generatedHeader), name)

		var cr rules.PrometheusRule
		require.NoError(t, yaml.Unmarshal(data, &cr), name)
		assert.Equal(t, strings.TrimSuffix(name, ".yaml"), cr.Metadata.Name)
	}
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutputDir = dir

	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_RulesOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, run(Config{OutputDir: dir, RulesEnabled: true}, false))

	_, err := os.Stat(filepath.Join(dir, "grafana"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "prometheus", "ipe-alerts.yaml"))
	assert.NoError(t, err)
}
