package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

// CustomerUpserter stores a customer's loyalty profile.
type CustomerUpserter interface {
	UpsertCustomer(ctx context.Context, c *domain.Customer) error
}

// CustomerGetter reads a customer back.
type CustomerGetter interface {
	GetCustomer(ctx context.Context, shopID, id string) (*domain.Customer, error)
}

// CustomersHandler handles customer loyalty profiles.
type CustomersHandler struct {
	upserter CustomerUpserter
	getter   CustomerGetter
}

// NewCustomersHandler creates a new CustomersHandler.
func NewCustomersHandler(u CustomerUpserter, g CustomerGetter) *CustomersHandler {
	return &CustomersHandler{upserter: u, getter: g}
}

// CustomerPathInput identifies a customer within a shop.
type CustomerPathInput struct {
	ShopID string `path:"shop_id" doc:"Shop ID"`
	ID     string `path:"id"      doc:"Customer ID"`
}

// UpsertCustomerInput is the input for creating or replacing a customer.
type UpsertCustomerInput struct {
	ShopID string `path:"shop_id" doc:"Shop ID"`
	ID     string `path:"id"      doc:"Customer ID"`
	Body   struct {
		Name    string                  `json:"name,omitempty" doc:"Display name"`
		Profile pricing.CustomerProfile `json:"profile"        doc:"Loyalty profile"`
	}
}

// CustomerOutput is the response for a single customer.
type CustomerOutput struct {
	Body domain.Customer
}

// UpsertCustomer creates or replaces a customer's loyalty profile.
func (h *CustomersHandler) UpsertCustomer(
	ctx context.Context,
	input *UpsertCustomerInput,
) (*CustomerOutput, error) {
	c := &domain.Customer{
		ID:      input.ID,
		ShopID:  input.ShopID,
		Name:    input.Body.Name,
		Profile: input.Body.Profile,
	}
	if err := h.upserter.UpsertCustomer(ctx, c); err != nil {
		return nil, toHTTPError(err, "saving customer")
	}
	return &CustomerOutput{Body: *c}, nil
}

// GetCustomer returns a single customer.
func (h *CustomersHandler) GetCustomer(
	ctx context.Context,
	input *CustomerPathInput,
) (*CustomerOutput, error) {
	c, err := h.getter.GetCustomer(ctx, input.ShopID, input.ID)
	if err != nil {
		return nil, toHTTPError(err, "fetching customer")
	}
	return &CustomerOutput{Body: *c}, nil
}

// RegisterCustomerRoutes registers customer endpoints with the Huma API.
func RegisterCustomerRoutes(api huma.API, h *CustomersHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "upsert-customer",
		Method:      http.MethodPut,
		Path:        "/api/v1/shops/{shop_id}/customers/{id}",
		Summary:     "Create or replace a customer",
		Description: "Stores the customer's membership tier, loyalty points, and historical spend.",
		Tags:        []string{"customers"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, h.UpsertCustomer)

	huma.Register(api, huma.Operation{
		OperationID: "get-customer",
		Method:      http.MethodGet,
		Path:        "/api/v1/shops/{shop_id}/customers/{id}",
		Summary:     "Get a customer",
		Tags:        []string{"customers"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetCustomer)
}
