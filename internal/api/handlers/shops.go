package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

// ShopService defines the engine methods required by the shops handler.
type ShopService interface {
	CreateShop(
		ctx context.Context,
		name string,
		dailyCapacity int,
		settings *pricing.ShopSettings,
	) (*domain.Shop, error)
	GetShop(ctx context.Context, id string) (*domain.Shop, error)
	UpdateShopSettings(ctx context.Context, id string, settings pricing.ShopSettings) error
}

// ShopLister lists every shop.
type ShopLister interface {
	ListShops(ctx context.Context) ([]domain.Shop, error)
}

// ShopsHandler handles shop CRUD operations.
type ShopsHandler struct {
	svc    ShopService
	lister ShopLister
}

// NewShopsHandler creates a new ShopsHandler.
func NewShopsHandler(svc ShopService, lister ShopLister) *ShopsHandler {
	return &ShopsHandler{svc: svc, lister: lister}
}

// --- Input/Output types ---

// CreateShopInput is the request body for creating a shop.
type CreateShopInput struct {
	Body struct {
		Name          string                `json:"name"               doc:"Shop name"                                       minLength:"1"`
		DailyCapacity int                   `json:"daily_capacity"     doc:"Jobs per day before surge pricing applies"       minimum:"0"   required:"false"`
		Settings      *pricing.ShopSettings `json:"settings,omitempty" doc:"Rates and service catalog (default: built-ins)"`
	}
}

// ShopOutput is the response for a single shop.
type ShopOutput struct {
	Body domain.Shop
}

// ListShopsOutput is the response for listing shops.
type ListShopsOutput struct {
	Body []domain.Shop
}

// GetShopInput is the input for getting a single shop.
type GetShopInput struct {
	ID string `path:"id" doc:"Shop ID"`
}

// UpdateShopSettingsInput is the input for replacing a shop's settings.
type UpdateShopSettingsInput struct {
	ID   string `path:"id" doc:"Shop ID"`
	Body pricing.ShopSettings
}

// --- Handlers ---

// CreateShop creates a new shop.
func (h *ShopsHandler) CreateShop(ctx context.Context, input *CreateShopInput) (*ShopOutput, error) {
	shop, err := h.svc.CreateShop(ctx, input.Body.Name, input.Body.DailyCapacity, input.Body.Settings)
	if err != nil {
		return nil, toHTTPError(err, "creating shop")
	}
	return &ShopOutput{Body: *shop}, nil
}

// ListShops returns all shops.
func (h *ShopsHandler) ListShops(ctx context.Context, _ *struct{}) (*ListShopsOutput, error) {
	shops, err := h.lister.ListShops(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing shops failed: " + err.Error())
	}
	if shops == nil {
		shops = []domain.Shop{}
	}
	return &ListShopsOutput{Body: shops}, nil
}

// GetShop returns a single shop by ID.
func (h *ShopsHandler) GetShop(ctx context.Context, input *GetShopInput) (*ShopOutput, error) {
	shop, err := h.svc.GetShop(ctx, input.ID)
	if err != nil {
		return nil, toHTTPError(err, "fetching shop")
	}
	return &ShopOutput{Body: *shop}, nil
}

// UpdateSettings replaces a shop's settings and returns the updated shop.
func (h *ShopsHandler) UpdateSettings(
	ctx context.Context,
	input *UpdateShopSettingsInput,
) (*ShopOutput, error) {
	if err := h.svc.UpdateShopSettings(ctx, input.ID, input.Body); err != nil {
		return nil, toHTTPError(err, "updating shop settings")
	}

	shop, err := h.svc.GetShop(ctx, input.ID)
	if err != nil {
		return nil, toHTTPError(err, "fetching shop")
	}
	return &ShopOutput{Body: *shop}, nil
}

// RegisterShopRoutes registers shop endpoints with the Huma API.
func RegisterShopRoutes(api huma.API, h *ShopsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-shop",
		Method:        http.MethodPost,
		Path:          "/api/v1/shops",
		Summary:       "Create a shop",
		Description:   "Creates a shop. Omitted settings default to the built-in rates and service catalog.",
		Tags:          []string{"shops"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.CreateShop)

	huma.Register(api, huma.Operation{
		OperationID: "list-shops",
		Method:      http.MethodGet,
		Path:        "/api/v1/shops",
		Summary:     "List shops",
		Tags:        []string{"shops"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListShops)

	huma.Register(api, huma.Operation{
		OperationID: "get-shop",
		Method:      http.MethodGet,
		Path:        "/api/v1/shops/{id}",
		Summary:     "Get a shop",
		Tags:        []string{"shops"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetShop)

	huma.Register(api, huma.Operation{
		OperationID: "update-shop-settings",
		Method:      http.MethodPut,
		Path:        "/api/v1/shops/{id}/settings",
		Summary:     "Replace a shop's settings",
		Description: "Replaces the shop's rates, multiplier tables, and service catalog. " +
			"Quotes priced after this call use the new settings.",
		Tags:   []string{"shops"},
		Errors: []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, h.UpdateSettings)
}
