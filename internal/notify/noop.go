package notify

import (
	"context"
	"log/slog"
)

// NoOpPublisher implements Publisher by logging discarded events. It is used
// when no event backend is configured.
type NoOpPublisher struct {
	log *slog.Logger
}

// NewNoOpPublisher creates a publisher that discards events with a log message.
func NewNoOpPublisher(log *slog.Logger) *NoOpPublisher {
	return &NoOpPublisher{log: log}
}

// PublishEstimate logs and discards the event.
func (n *NoOpPublisher) PublishEstimate(_ context.Context, ev EstimateEvent) error {
	n.log.Debug("estimate event discarded (no backend configured)",
		"estimate_id", ev.EstimateID,
		"shop_id", ev.ShopID,
		"total", ev.Total,
	)
	return nil
}
