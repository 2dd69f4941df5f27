package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	colorGreen  = 0x2ECC71 // clean estimate
	colorYellow = 0xF1C40F // validation messages recorded
	colorOrange = 0xE67E22 // formulas diverged
)

// maxFieldLen is Discord's limit for an embed field value.
const maxFieldLen = 1024

// WebhookPublisher implements Publisher by posting a Discord-compatible embed
// for every priced estimate.
type WebhookPublisher struct {
	webhookURL string
	client     *http.Client
}

// WebhookOption configures a WebhookPublisher.
type WebhookOption func(*WebhookPublisher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) WebhookOption {
	return func(w *WebhookPublisher) {
		w.client = c
	}
}

// NewWebhookPublisher creates a new WebhookPublisher.
func NewWebhookPublisher(webhookURL string, opts ...WebhookOption) *WebhookPublisher {
	w := &WebhookPublisher{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

type webhookPayload struct {
	Embeds []webhookEmbed `json:"embeds"`
}

type webhookEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []webhookEmbedField `json:"fields,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

type webhookEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// PublishEstimate posts ev as a single embed.
func (w *WebhookPublisher) PublishEstimate(ctx context.Context, ev EstimateEvent) error {
	return w.post(ctx, webhookPayload{Embeds: []webhookEmbed{buildEmbed(&ev)}})
}

func buildEmbed(ev *EstimateEvent) webhookEmbed {
	embed := webhookEmbed{
		Title: fmt.Sprintf("Estimate %s: $%.2f", ev.EstimateID, ev.Total),
		Color: eventColor(ev),
		Fields: []webhookEmbedField{
			{Name: "Shop", Value: ev.ShopID, Inline: true},
			{Name: "Inspection", Value: ev.InspectionID, Inline: true},
			{Name: "Service", Value: ev.ServiceSKU, Inline: true},
			{Name: "Breakdown Total", Value: fmt.Sprintf("$%.2f", ev.BreakdownTotal), Inline: true},
		},
	}
	if ev.CustomerID != "" {
		embed.Fields = append(embed.Fields, webhookEmbedField{Name: "Customer", Value: ev.CustomerID, Inline: true})
	}
	if ev.Divergent {
		embed.Description = "Quoted total and breakdown total disagree."
	}
	if len(ev.ValidationErrors) > 0 {
		embed.Fields = append(embed.Fields, webhookEmbedField{
			Name:  "Validation",
			Value: truncate(strings.Join(ev.ValidationErrors, "\n"), maxFieldLen),
		})
	}
	if !ev.CreatedAt.IsZero() {
		embed.Timestamp = ev.CreatedAt.UTC().Format("2006-01-02T15:04:05Z")
	}
	return embed
}

func eventColor(ev *EstimateEvent) int {
	switch {
	case ev.Divergent:
		return colorOrange
	case len(ev.ValidationErrors) > 0:
		return colorYellow
	default:
		return colorGreen
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func (w *WebhookPublisher) post(ctx context.Context, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return errors.New("webhook rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("webhook returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}

// MultiPublisher fans an event out to every publisher. All publishers are
// tried; failures are joined.
type MultiPublisher []Publisher

// PublishEstimate publishes ev to each publisher in order.
func (m MultiPublisher) PublishEstimate(ctx context.Context, ev EstimateEvent) error {
	var errs []error
	for _, p := range m {
		if err := p.PublishEstimate(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
