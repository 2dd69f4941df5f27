package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// ConnectNATS opens a NATS connection that reconnects indefinitely.
func ConnectNATS(url, name string, timeout time.Duration) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name(name),
		nats.Timeout(timeout),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}
	return nc, nil
}

// NATSPublisher implements Publisher by publishing JSON events to NATS with
// the caller's trace context in the message headers.
type NATSPublisher struct {
	nc         *nats.Conn
	subject    string
	propagator propagation.TextMapPropagator
}

// NATSOption configures a NATSPublisher.
type NATSOption func(*NATSPublisher)

// WithPropagator overrides the global OpenTelemetry propagator.
func WithPropagator(p propagation.TextMapPropagator) NATSOption {
	return func(n *NATSPublisher) {
		n.propagator = p
	}
}

// NewNATSPublisher creates a publisher on <subjectPrefix>.estimate.created.
func NewNATSPublisher(nc *nats.Conn, subjectPrefix string, opts ...NATSOption) *NATSPublisher {
	n := &NATSPublisher{
		nc:         nc,
		subject:    subjectPrefix + "." + EstimateCreatedSubject,
		propagator: otel.GetTextMapPropagator(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Subject returns the subject events are published on.
func (n *NATSPublisher) Subject() string {
	return n.subject
}

// Ping reports an error unless the connection is currently established.
func (n *NATSPublisher) Ping(_ context.Context) error {
	if !n.nc.IsConnected() {
		return fmt.Errorf("nats connection %s", n.nc.Status())
	}
	return nil
}

// PublishEstimate serializes ev as JSON and publishes it.
func (n *NATSPublisher) PublishEstimate(ctx context.Context, ev EstimateEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshaling estimate event: %w", err)
	}

	msg := &nats.Msg{
		Subject: n.subject,
		Data:    data,
	}
	n.propagator.Inject(ctx, (*headerCarrier)(msg))

	if err := n.nc.PublishMsg(msg); err != nil {
		return fmt.Errorf("publishing estimate event: %w", err)
	}
	return nil
}

// headerCarrier adapts nats.Msg headers for the OpenTelemetry TextMapCarrier.
type headerCarrier nats.Msg

func (c *headerCarrier) Get(key string) string {
	if c.Header == nil {
		return ""
	}
	return c.Header.Get(key)
}

func (c *headerCarrier) Set(key, val string) {
	if c.Header == nil {
		c.Header = make(nats.Header)
	}
	c.Header.Set(key, val)
}

func (c *headerCarrier) Keys() []string {
	if c.Header == nil {
		return nil
	}
	keys := make([]string, 0, len(c.Header))
	for k := range c.Header {
		keys = append(keys, k)
	}
	return keys
}
