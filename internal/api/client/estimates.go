package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/donaldgifford/inspection-pricing/internal/engine"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

// EstimatesResponse wraps a paginated estimates response.
type EstimatesResponse struct {
	Estimates []domain.Estimate `json:"estimates"`
	Total     int               `json:"total"`
	Limit     int               `json:"limit"`
	Offset    int               `json:"offset"`
}

// ListEstimatesParams defines query parameters for estimate queries.
type ListEstimatesParams struct {
	ShopID       string
	InspectionID string
	CustomerID   string
	Statuses     []string
	MinTotal     float64
	MaxTotal     float64
	Divergent    *bool
	Limit        int
	Offset       int
	OrderBy      string
}

func (p *ListEstimatesParams) values() url.Values {
	q := url.Values{}
	if p.ShopID != "" {
		q.Set("shop_id", p.ShopID)
	}
	if p.InspectionID != "" {
		q.Set("inspection_id", p.InspectionID)
	}
	if p.CustomerID != "" {
		q.Set("customer_id", p.CustomerID)
	}
	if len(p.Statuses) > 0 {
		q.Set("status", strings.Join(p.Statuses, ","))
	}
	if p.MinTotal > 0 {
		q.Set("min_total", strconv.FormatFloat(p.MinTotal, 'f', -1, 64))
	}
	if p.MaxTotal > 0 {
		q.Set("max_total", strconv.FormatFloat(p.MaxTotal, 'f', -1, 64))
	}
	if p.Divergent != nil {
		q.Set("divergent", strconv.FormatBool(*p.Divergent))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.OrderBy != "" {
		q.Set("order_by", p.OrderBy)
	}
	return q
}

// Quote prices and stores a new draft estimate.
func (c *Client) Quote(ctx context.Context, req *engine.QuoteRequest) (*domain.Estimate, error) {
	var est domain.Estimate
	if err := c.post(ctx, "/api/v1/estimates", req, &est); err != nil {
		return nil, err
	}
	return &est, nil
}

// ListEstimates returns estimates matching the given parameters.
func (c *Client) ListEstimates(
	ctx context.Context,
	params *ListEstimatesParams,
) (*EstimatesResponse, error) {
	path := "/api/v1/estimates"
	if q := params.values(); len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp EstimatesResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetEstimate returns a single estimate by ID.
func (c *Client) GetEstimate(ctx context.Context, id string) (*domain.Estimate, error) {
	var est domain.Estimate
	if err := c.get(ctx, "/api/v1/estimates/"+url.PathEscape(id), &est); err != nil {
		return nil, err
	}
	return &est, nil
}

// UpdateEstimateStatus moves an estimate to a new status.
func (c *Client) UpdateEstimateStatus(
	ctx context.Context,
	id string,
	status domain.EstimateStatus,
) (*domain.Estimate, error) {
	body := map[string]domain.EstimateStatus{"status": status}

	var est domain.Estimate
	if err := c.patch(ctx, "/api/v1/estimates/"+url.PathEscape(id)+"/status", body, &est); err != nil {
		return nil, err
	}
	return &est, nil
}
