package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/inspection-pricing/internal/engine"
	"github.com/donaldgifford/inspection-pricing/internal/store"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

// Quoter prices and stores an estimate.
type Quoter interface {
	Quote(ctx context.Context, req *engine.QuoteRequest) (*domain.Estimate, error)
}

// EstimateStore defines the store methods required by the estimates handler.
type EstimateStore interface {
	GetEstimate(ctx context.Context, id string) (*domain.Estimate, error)
	ListEstimates(ctx context.Context, q *store.EstimateQuery) ([]domain.Estimate, int, error)
	UpdateEstimateStatus(ctx context.Context, id string, status domain.EstimateStatus) error
}

// EstimatesHandler handles quoting and estimate queries.
type EstimatesHandler struct {
	quoter Quoter
	store  EstimateStore
}

// NewEstimatesHandler creates a new EstimatesHandler.
func NewEstimatesHandler(q Quoter, s EstimateStore) *EstimatesHandler {
	return &EstimatesHandler{quoter: q, store: s}
}

// --- Input/Output types ---

// QuoteInput is the request body for pricing a new estimate.
type QuoteInput struct {
	Body engine.QuoteRequest
}

// EstimateOutput is the response for a single estimate.
type EstimateOutput struct {
	Body domain.Estimate
}

// ListEstimatesInput is the input for listing estimates with optional filters.
type ListEstimatesInput struct {
	ShopID       string  `query:"shop_id"       doc:"Filter by shop"`
	InspectionID string  `query:"inspection_id" doc:"Filter by inspection"`
	CustomerID   string  `query:"customer_id"   doc:"Filter by customer"`
	Status       string  `query:"status"        doc:"Comma-separated statuses (draft,sent,approved,declined)"`
	MinTotal     float64 `query:"min_total"     doc:"Minimum total"                                          minimum:"0"`
	MaxTotal     float64 `query:"max_total"     doc:"Maximum total"                                          minimum:"0"`
	Divergent    string  `query:"divergent"     doc:"Only estimates whose formulas disagree (or agree)"      enum:"true,false,"`
	Limit        int     `query:"limit"         doc:"Number of results (default 50)"                         minimum:"1" maximum:"1000"`
	Offset       int     `query:"offset"        doc:"Pagination offset"                                      minimum:"0"`
	OrderBy      string  `query:"order_by"      doc:"Sort field"                                             enum:"created_at,updated_at,total,"`
}

// ListEstimatesOutput is the response for listing estimates.
type ListEstimatesOutput struct {
	Body struct {
		Estimates []domain.Estimate `json:"estimates"`
		Total     int               `json:"total"`
		Limit     int               `json:"limit"`
		Offset    int               `json:"offset"`
	}
}

// GetEstimateInput is the input for getting a single estimate.
type GetEstimateInput struct {
	ID string `path:"id" doc:"Estimate ID"`
}

// UpdateStatusInput is the input for moving an estimate through its lifecycle.
type UpdateStatusInput struct {
	ID   string `path:"id" doc:"Estimate ID"`
	Body struct {
		Status domain.EstimateStatus `json:"status" enum:"draft,sent,approved,declined" doc:"New status"`
	}
}

// --- Handlers ---

// Quote prices an estimate from the shop's settings, the customer's loyalty
// profile, and today's market, then stores it as a draft.
func (h *EstimatesHandler) Quote(ctx context.Context, input *QuoteInput) (*EstimateOutput, error) {
	est, err := h.quoter.Quote(ctx, &input.Body)
	if err != nil {
		return nil, toHTTPError(err, "quoting estimate")
	}
	return &EstimateOutput{Body: *est}, nil
}

// ListEstimates returns estimates with optional filters and pagination.
func (h *EstimatesHandler) ListEstimates(
	ctx context.Context,
	input *ListEstimatesInput,
) (*ListEstimatesOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	q := &store.EstimateQuery{
		Limit:   limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.ShopID != "" {
		q.ShopID = &input.ShopID
	}
	if input.InspectionID != "" {
		q.InspectionID = &input.InspectionID
	}
	if input.CustomerID != "" {
		q.CustomerID = &input.CustomerID
	}
	if input.Status != "" {
		for s := range strings.SplitSeq(input.Status, ",") {
			s = strings.TrimSpace(s)
			if !domain.EstimateStatus(s).Valid() {
				return nil, huma.Error400BadRequest("unknown estimate status: " + s)
			}
			q.Statuses = append(q.Statuses, s)
		}
	}
	if input.MinTotal != 0 {
		q.MinTotal = &input.MinTotal
	}
	if input.MaxTotal != 0 {
		q.MaxTotal = &input.MaxTotal
	}
	if input.Divergent != "" {
		d := input.Divergent == "true"
		q.Divergent = &d
	}

	estimates, total, err := h.store.ListEstimates(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("estimate query failed: " + err.Error())
	}

	if estimates == nil {
		estimates = []domain.Estimate{}
	}

	resp := &ListEstimatesOutput{}
	resp.Body.Estimates = estimates
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetEstimate returns a single estimate by ID.
func (h *EstimatesHandler) GetEstimate(
	ctx context.Context,
	input *GetEstimateInput,
) (*EstimateOutput, error) {
	est, err := h.store.GetEstimate(ctx, input.ID)
	if err != nil {
		return nil, toHTTPError(err, "fetching estimate")
	}
	return &EstimateOutput{Body: *est}, nil
}

// UpdateStatus sets an estimate's status and returns the updated estimate.
func (h *EstimatesHandler) UpdateStatus(
	ctx context.Context,
	input *UpdateStatusInput,
) (*EstimateOutput, error) {
	if err := h.store.UpdateEstimateStatus(ctx, input.ID, input.Body.Status); err != nil {
		return nil, toHTTPError(err, "updating estimate status")
	}

	est, err := h.store.GetEstimate(ctx, input.ID)
	if err != nil {
		return nil, toHTTPError(err, "fetching estimate")
	}
	return &EstimateOutput{Body: *est}, nil
}

// RegisterEstimateRoutes registers estimate endpoints with the Huma API.
func RegisterEstimateRoutes(api huma.API, h *EstimatesHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-estimate",
		Method:        http.MethodPost,
		Path:          "/api/v1/estimates",
		Summary:       "Quote an estimate",
		Description:   "Prices a service for an inspected vehicle and stores the result as a draft estimate.",
		Tags:          []string{"estimates"},
		DefaultStatus: http.StatusCreated,
		Errors: []int{
			http.StatusBadRequest,
			http.StatusNotFound,
			http.StatusUnprocessableEntity,
			http.StatusInternalServerError,
		},
	}, h.Quote)

	huma.Register(api, huma.Operation{
		OperationID: "list-estimates",
		Method:      http.MethodGet,
		Path:        "/api/v1/estimates",
		Summary:     "List estimates",
		Description: "Returns estimates with optional filters for shop, inspection, customer, status, " +
			"total range, and formula divergence.",
		Tags:   []string{"estimates"},
		Errors: []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.ListEstimates)

	huma.Register(api, huma.Operation{
		OperationID: "get-estimate",
		Method:      http.MethodGet,
		Path:        "/api/v1/estimates/{id}",
		Summary:     "Get an estimate",
		Description: "Returns a single estimate with the params and breakdown that produced it.",
		Tags:        []string{"estimates"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetEstimate)

	huma.Register(api, huma.Operation{
		OperationID: "update-estimate-status",
		Method:      http.MethodPatch,
		Path:        "/api/v1/estimates/{id}/status",
		Summary:     "Update an estimate's status",
		Description: "Moves an estimate between draft, sent, approved, and declined.",
		Tags:        []string{"estimates"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.UpdateStatus)
}
