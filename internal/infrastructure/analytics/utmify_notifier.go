package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"sabores_pix/internal/domain/entities"
	"sabores_pix/internal/infrastructure/metrics"
	"sabores_pix/internal/usecase/interfaces"
)

const ordersPath = "/api-credentials/orders"

// Config holds Utmify notifier configuration.
type Config struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
}

// Notifier delivers order events to the Utmify order-ingestion API.
//
// Delivery is best-effort by contract: a marketing integration must never
// degrade the checkout path. Without a token the notifier is a silent no-op.
type Notifier struct {
	baseURL string
	token   string
	timeout time.Duration
	http    *http.Client
	metrics *metrics.Metrics
}

var _ interfaces.IAnalyticsNotifier = (*Notifier)(nil)

// NewNotifier creates a Utmify notifier.
func NewNotifier(cfg Config, metricRegistry *metrics.Metrics) *Notifier {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.utmify.com.br"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Notifier{
		baseURL: base,
		token:   cfg.APIToken,
		timeout: timeout,
		http:    &http.Client{Timeout: timeout},
		metrics: metricRegistry,
	}
}

// NotifyOrder performs one delivery attempt. No token configured means no
// outbound call at all and a nil return.
func (n *Notifier) NotifyOrder(ctx context.Context, event entities.OrderEvent) error {
	if n.token == "" {
		log.Printf("[analytics][notifier] skipped (no UTMIFY_API_TOKEN) order_id=%s status=%s", event.OrderID, event.Status)
		n.observe("skipped")
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		n.observe("marshal_error")
		return fmt.Errorf("marshal order event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+ordersPath, bytes.NewReader(payload))
	if err != nil {
		n.observe("build_error")
		return fmt.Errorf("build utmify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-token", n.token)

	resp, err := n.http.Do(req)
	if err != nil {
		n.observe("transport_error")
		return fmt.Errorf("call utmify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		n.observe(fmt.Sprintf("%d", resp.StatusCode))
		return fmt.Errorf("utmify rejected order event: status=%d body=%s", resp.StatusCode, string(body))
	}

	n.observe("ok")
	log.Printf("[analytics][notifier] order event delivered order_id=%s status=%s", event.OrderID, event.Status)
	return nil
}

// NotifyOrderAsync dispatches NotifyOrder off the caller's critical path with
// a detached context, so the surrounding request lifecycle never waits on or
// fails because of analytics delivery.
func (n *Notifier) NotifyOrderAsync(event entities.OrderEvent) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[analytics][notifier] panic during async delivery order_id=%s: %v", event.OrderID, r)
				if n.metrics != nil {
					n.metrics.Errors.WithLabelValues("analytics").Inc()
				}
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		if err := n.NotifyOrder(ctx, event); err != nil {
			log.Printf("[analytics][notifier] async delivery failed order_id=%s status=%s err=%v", event.OrderID, event.Status, err)
			if n.metrics != nil {
				n.metrics.Errors.WithLabelValues("analytics").Inc()
			}
		}
	}()
}

func (n *Notifier) observe(status string) {
	if n.metrics == nil {
		return
	}
	n.metrics.AnalyticsDeliveries.WithLabelValues(status).Inc()
}
