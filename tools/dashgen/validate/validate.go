// Package validate checks generated dashboards and rules against PromQL
// syntax and the set of metrics the service exports.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation errors and warnings.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation produced no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Expr parses a PromQL expression and checks every selected metric against
// known. Histogram series suffixes resolve to their base metric.
func Expr(expr string, known map[string]bool) Result {
	var res Result

	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("parsing %q: %v", expr, err))
		return res
	}

	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !knownMetric(vs.Name, known) {
			res.Errors = append(res.Errors, fmt.Sprintf("unknown metric %q in %q", vs.Name, expr))
		}
		return nil
	})
	return res
}

// Exprs validates each expression in turn.
func Exprs(exprs []string, known map[string]bool) Result {
	var res Result
	for _, e := range exprs {
		res.merge(Expr(e, known))
	}
	return res
}

// Dashboard validates every query target in a built dashboard. Panels
// without targets produce a warning.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("encoding dashboard: %v", err))
		return res
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decoding dashboard: %v", err))
		return res
	}

	walkPanels(doc["panels"], func(panel map[string]any) {
		title, _ := panel["title"].(string)
		targets, _ := panel["targets"].([]any)
		if len(targets) == 0 {
			res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no queries", title))
			return
		}
		for _, t := range targets {
			target, _ := t.(map[string]any)
			expr, _ := target["expr"].(string)
			if expr == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("panel %q has a target without expr", title))
				continue
			}
			res.merge(Expr(expr, known))
		}
	})
	return res
}

// walkPanels calls fn for every non-row panel, descending into rows.
func walkPanels(v any, fn func(map[string]any)) {
	list, _ := v.([]any)
	for _, item := range list {
		panel, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if panel["type"] == "row" {
			walkPanels(panel["panels"], fn)
			continue
		}
		fn(panel)
	}
}

func knownMetric(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}
