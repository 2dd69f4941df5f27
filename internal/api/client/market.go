package client

import (
	"context"
	"net/url"
	"time"

	"github.com/donaldgifford/inspection-pricing/internal/engine"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

// MarketResponse is a shop's market snapshot. Stored is false when the
// server returned neutral conditions.
type MarketResponse struct {
	Snapshot *domain.MarketSnapshot `json:"snapshot"`
	Stored   bool                   `json:"stored"`
}

// GetMarket returns a shop's market snapshot for day. A zero day means today.
func (c *Client) GetMarket(ctx context.Context, shopID string, day time.Time) (*MarketResponse, error) {
	path := "/api/v1/shops/" + url.PathEscape(shopID) + "/market"
	if !day.IsZero() {
		path += "?day=" + day.Format(time.DateOnly)
	}

	var resp MarketResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetMarket stores a shop's market conditions.
func (c *Client) SetMarket(
	ctx context.Context,
	shopID string,
	u *engine.MarketUpdate,
) (*MarketResponse, error) {
	var resp MarketResponse
	if err := c.put(ctx, "/api/v1/shops/"+url.PathEscape(shopID)+"/market", u, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RefreshMarket creates today's snapshot for every shop lacking one and
// returns how many were created.
func (c *Client) RefreshMarket(ctx context.Context) (int, error) {
	var resp struct {
		Created int `json:"created"`
	}
	if err := c.post(ctx, "/api/v1/market/refresh", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Created, nil
}
