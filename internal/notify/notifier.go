// Package notify defines the event publishing interface and implementations
// used to announce priced estimates to downstream systems.
package notify

import (
	"context"
	"time"

	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

// EstimateCreatedSubject is appended to the configured subject prefix.
const EstimateCreatedSubject = "estimate.created"

// EstimateEvent is the payload published after an estimate is persisted.
type EstimateEvent struct {
	EstimateID       string    `json:"estimate_id"`
	ShopID           string    `json:"shop_id"`
	InspectionID     string    `json:"inspection_id"`
	CustomerID       string    `json:"customer_id,omitempty"`
	ServiceSKU       string    `json:"service_sku"`
	Total            float64   `json:"total"`
	BreakdownTotal   float64   `json:"breakdown_total"`
	Divergent        bool      `json:"divergent"`
	ValidationErrors []string  `json:"validation_errors,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewEstimateEvent builds the event for a persisted estimate.
func NewEstimateEvent(e *domain.Estimate) EstimateEvent {
	return EstimateEvent{
		EstimateID:       e.ID,
		ShopID:           e.ShopID,
		InspectionID:     e.InspectionID,
		CustomerID:       e.CustomerID,
		ServiceSKU:       e.ServiceSKU,
		Total:            e.Total,
		BreakdownTotal:   e.Breakdown.Total,
		Divergent:        e.Divergent,
		ValidationErrors: e.ValidationErrors,
		CreatedAt:        e.CreatedAt,
	}
}

// Publisher defines the interface for announcing priced estimates.
type Publisher interface {
	PublishEstimate(ctx context.Context, ev EstimateEvent) error
}
