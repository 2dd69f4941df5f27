package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

func startTestNATS(t *testing.T) *nats.Conn {
	t.Helper()

	srv, err := natsserver.NewServer(&natsserver.Options{Port: -1})
	require.NoError(t, err)

	go srv.Start()
	t.Cleanup(srv.Shutdown)

	require.True(t, srv.ReadyForConnections(3*time.Second), "nats server not ready")

	nc, err := ConnectNATS(srv.ClientURL(), "notify-test", time.Second)
	require.NoError(t, err)
	t.Cleanup(nc.Close)

	return nc
}

func TestNATSPublisher_PublishEstimate(t *testing.T) {
	t.Parallel()

	nc := startTestNATS(t)
	pub := NewNATSPublisher(nc, "shops", WithPropagator(propagation.TraceContext{}))
	assert.Equal(t, "shops.estimate.created", pub.Subject())

	msgs := make(chan *nats.Msg, 1)
	sub, err := nc.ChanSubscribe(pub.Subject(), msgs)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sub.Unsubscribe() })
	require.NoError(t, nc.Flush())

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	est := &domain.Estimate{
		ID:           "est-1",
		ShopID:       "shop-1",
		InspectionID: "insp-1",
		ServiceSKU:   "basic-wash",
		Total:        270,
		Breakdown:    pricing.PriceBreakdown{Total: 180},
		Divergent:    true,
	}
	require.NoError(t, pub.PublishEstimate(ctx, NewEstimateEvent(est)))

	select {
	case msg := <-msgs:
		var ev EstimateEvent
		require.NoError(t, json.Unmarshal(msg.Data, &ev))
		assert.Equal(t, "est-1", ev.EstimateID)
		assert.InDelta(t, 270.0, ev.Total, 1e-9)
		assert.InDelta(t, 180.0, ev.BreakdownTotal, 1e-9)
		assert.True(t, ev.Divergent)
		assert.Equal(t,
			"00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
			msg.Header.Get("traceparent"),
		)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for estimate event")
	}
}

func TestNATSPublisher_ClosedConnection(t *testing.T) {
	t.Parallel()

	nc := startTestNATS(t)
	pub := NewNATSPublisher(nc, "shops")
	require.NoError(t, pub.Ping(context.Background()))
	nc.Close()

	require.Error(t, pub.Ping(context.Background()))

	err := pub.PublishEstimate(context.Background(), EstimateEvent{EstimateID: "est-2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publishing estimate event")
}

func TestConnectNATS_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := ConnectNATS("nats://127.0.0.1:1", "notify-test", 200*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connecting to nats")
}

func TestHeaderCarrier(t *testing.T) {
	t.Parallel()

	msg := &nats.Msg{}
	c := (*headerCarrier)(msg)
	assert.Empty(t, c.Get("traceparent"))
	assert.Nil(t, c.Keys())

	c.Set("traceparent", "abc")
	assert.Equal(t, "abc", c.Get("traceparent"))
	assert.Equal(t, []string{"traceparent"}, c.Keys())
}

// compile-time interface check.
var _ Publisher = (*NATSPublisher)(nil)
