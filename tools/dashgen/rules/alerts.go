package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// inspection-pricing operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "ipe-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "ipe-alerts",
					Rules: []Rule{
						{
							Alert: "IpeDown",
							Expr:  `absent(up{job="inspection-pricing"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Inspection Pricing is down",
								"description": "The inspection-pricing job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "IpeReadinessDown",
							Expr:  `ipe_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Inspection Pricing readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "IpeHighErrorRate",
							Expr:  `ipe:http_errors:rate5m / ipe:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Inspection Pricing",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "IpeFormulaDivergence",
							Expr:  `ipe:formula_divergence:rate5m > 0`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Estimate breakdowns disagree with quoted totals",
								"description": "Breakdown totals have diverged from quoted estimates for more than 15 minutes.",
							},
						},
						{
							Alert: "IpeValidationFailures",
							Expr:  `ipe:validation_failures:rate5m > 0.1`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "info",
							},
							Annotations: map[string]string{
								"summary":     "Pricing params validation failure rate is elevated",
								"description": "Pricing params are failing validation at more than 0.1/s for the last 10 minutes.",
							},
						},
						{
							Alert: "IpeMarketRefreshFailed",
							Expr:  `increase(ipe_market_refresh_errors_total[1h]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Market snapshot refresh failed",
								"description": "One or more shops could not get today's market snapshot. Quotes fall back to carried-forward or neutral conditions.",
							},
						},
						{
							Alert: "IpeEventPublishFailures",
							Expr:  `increase(ipe_event_publish_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Estimate event publish failures detected",
								"description": "One or more estimate events failed to publish to NATS.",
							},
						},
						{
							Alert: "IpeRateLimiting",
							Expr:  `rate(ipe_http_rate_limited_total[5m]) > 1`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "info",
							},
							Annotations: map[string]string{
								"summary":     "Clients are being rate limited",
								"description": "More than one request per second has been rejected with 429 for 10 minutes.",
							},
						},
					},
				},
			},
		},
	}
}
