package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/inspection-pricing/internal/engine"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

// MarketService defines the engine methods required by the market handler.
type MarketService interface {
	MarketFor(ctx context.Context, shopID string, at time.Time) (*domain.MarketSnapshot, bool, error)
	SetMarketConditions(ctx context.Context, shopID string, u *engine.MarketUpdate) (*domain.MarketSnapshot, error)
	RefreshMarketSnapshots(ctx context.Context) (int, error)
}

// MarketHandler handles per-shop market conditions.
type MarketHandler struct {
	svc MarketService
	now func() time.Time
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(svc MarketService) *MarketHandler {
	return &MarketHandler{svc: svc, now: time.Now}
}

// --- Input/Output types ---

// GetMarketInput is the input for reading a shop's market snapshot.
type GetMarketInput struct {
	ShopID string `path:"shop_id" doc:"Shop ID"`
	Day    string `query:"day"    doc:"Day as YYYY-MM-DD (default: today)" pattern:"^\\d{4}-\\d{2}-\\d{2}$"`
}

// MarketOutput is the response for a shop's market snapshot. Stored is
// false when no snapshot exists and neutral conditions are shown.
type MarketOutput struct {
	Body struct {
		Snapshot *domain.MarketSnapshot `json:"snapshot"`
		Stored   bool                   `json:"stored"`
	}
}

// SetMarketInput is the input for setting a shop's market conditions.
type SetMarketInput struct {
	ShopID string `path:"shop_id" doc:"Shop ID"`
	Body   engine.MarketUpdate
}

// RefreshOutput is the response for a market refresh.
type RefreshOutput struct {
	Body struct {
		Created int `json:"created" doc:"Snapshots created"`
	}
}

// --- Handlers ---

// GetMarket returns the shop's market snapshot for a day.
func (h *MarketHandler) GetMarket(ctx context.Context, input *GetMarketInput) (*MarketOutput, error) {
	at := h.now()
	if input.Day != "" {
		day, err := time.Parse(time.DateOnly, input.Day)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid day: " + input.Day)
		}
		at = day
	}

	snap, stored, err := h.svc.MarketFor(ctx, input.ShopID, at)
	if err != nil {
		return nil, toHTTPError(err, "fetching market snapshot")
	}

	resp := &MarketOutput{}
	resp.Body.Snapshot = snap
	resp.Body.Stored = stored
	return resp, nil
}

// SetMarket stores the shop's market conditions for a day.
func (h *MarketHandler) SetMarket(ctx context.Context, input *SetMarketInput) (*MarketOutput, error) {
	snap, err := h.svc.SetMarketConditions(ctx, input.ShopID, &input.Body)
	if err != nil {
		return nil, toHTTPError(err, "setting market conditions")
	}

	resp := &MarketOutput{}
	resp.Body.Snapshot = snap
	resp.Body.Stored = true
	return resp, nil
}

// Refresh creates today's snapshot for every shop that lacks one.
func (h *MarketHandler) Refresh(ctx context.Context, _ *struct{}) (*RefreshOutput, error) {
	created, err := h.svc.RefreshMarketSnapshots(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("market refresh failed: " + err.Error())
	}

	resp := &RefreshOutput{}
	resp.Body.Created = created
	return resp, nil
}

// RegisterMarketRoutes registers market endpoints with the Huma API.
func RegisterMarketRoutes(api huma.API, h *MarketHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-market",
		Method:      http.MethodGet,
		Path:        "/api/v1/shops/{shop_id}/market",
		Summary:     "Get a shop's market conditions",
		Description: "Returns the stored snapshot for the day, or neutral conditions when none is stored.",
		Tags:        []string{"market"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.GetMarket)

	huma.Register(api, huma.Operation{
		OperationID: "set-market",
		Method:      http.MethodPut,
		Path:        "/api/v1/shops/{shop_id}/market",
		Summary:     "Set a shop's market conditions",
		Description: "Stores weather, competitor pressure, and local demand for one day. " +
			"Weather and seasonal factors are derived.",
		Tags:   []string{"market"},
		Errors: []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, h.SetMarket)

	huma.Register(api, huma.Operation{
		OperationID: "refresh-market",
		Method:      http.MethodPost,
		Path:        "/api/v1/market/refresh",
		Summary:     "Refresh market snapshots",
		Description: "Creates today's snapshot for every shop that lacks one, carrying competitor " +
			"pressure and demand forward. Runs on a schedule; this triggers it immediately.",
		Tags:   []string{"market"},
		Errors: []int{http.StatusInternalServerError},
	}, h.Refresh)
}
