package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "ipe-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "ipe-recording",
					Rules: []Rule{
						{
							Record: "ipe:http_requests:rate5m",
							Expr:   `sum(rate(ipe_http_requests_total[5m]))`,
						},
						{
							Record: "ipe:http_errors:rate5m",
							Expr:   `sum(rate(ipe_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "ipe:estimates:rate5m",
							Expr:   `sum(rate(ipe_estimates_total[5m]))`,
						},
						{
							Record: "ipe:validation_failures:rate5m",
							Expr:   `rate(ipe_validation_failures_total[5m])`,
						},
						{
							Record: "ipe:formula_divergence:rate5m",
							Expr:   `rate(ipe_formula_divergence_total[5m])`,
						},
						{
							Record: "ipe:cache_hit_ratio:rate5m",
							Expr: `rate(ipe_cache_hits_total[5m]) / ` +
								`(rate(ipe_cache_hits_total[5m]) + rate(ipe_cache_misses_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
