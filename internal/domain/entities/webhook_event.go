package entities

import (
	"encoding/json"
	"strings"
)

// WebhookEventKind is the classification of an inbound gateway callback.
type WebhookEventKind string

const (
	WebhookEventApproved     WebhookEventKind = "approved"
	WebhookEventPixCreated   WebhookEventKind = "pix_created"
	WebhookEventRefund       WebhookEventKind = "refund"
	WebhookEventChargeback   WebhookEventKind = "chargeback"
	WebhookEventUnrecognized WebhookEventKind = "unrecognized"
)

// Gateway event names and statuses as documented by For4Payments.
const (
	gatewayEventBuyApproved = "onBuyApproved"
	gatewayEventPixCreated  = "onPixCreated"
	gatewayEventRefound     = "onRefound"
	gatewayEventChargeback  = "onChargeback"

	gatewayStatusApproved   = "APPROVED"
	gatewayStatusRefunded   = "REFUNDED"
	gatewayStatusChargeback = "CHARGEBACK"
)

// WebhookCustomer is the loosely typed customer block of a gateway callback.
type WebhookCustomer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
}

// WebhookCallback mirrors the gateway's asynchronous payment-state callback.
//
// The gateway has sent the same logical value under different key spellings
// over time, so Event and PaymentMethod each resolve an ordered alias list.
type WebhookCallback struct {
	Event         string
	Status        string
	PaymentMethod string
	TransactionID string
	CreatedAt     string
	AmountCents   int
	Customer      WebhookCustomer
}

func (c *WebhookCallback) UnmarshalJSON(data []byte) error {
	var raw struct {
		Event         string          `json:"event"`
		Type          string          `json:"type"`
		Status        string          `json:"status"`
		Method        string          `json:"method"`
		PaymentMethod string          `json:"paymentMethod"`
		ID            string          `json:"id"`
		CreatedAt     string          `json:"createdAt"`
		Amount        json.Number     `json:"amount"`
		Customer      WebhookCustomer `json:"customer"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Event = firstNonEmpty(raw.Event, raw.Type)
	c.Status = raw.Status
	c.PaymentMethod = firstNonEmpty(raw.Method, raw.PaymentMethod)
	c.TransactionID = raw.ID
	c.CreatedAt = raw.CreatedAt
	c.Customer = raw.Customer

	if amount, err := raw.Amount.Int64(); err == nil {
		c.AmountCents = int(amount)
	} else if f, err := raw.Amount.Float64(); err == nil {
		c.AmountCents = int(f)
	}
	return nil
}

// Classify maps the callback onto a recognized event kind.
//
// Approval requires the PIX method marker (case-insensitive) in addition to
// the approved status/event; the remaining kinds match on either the explicit
// event name or the transaction status.
func (c WebhookCallback) Classify() WebhookEventKind {
	approved := c.Status == gatewayStatusApproved || c.Event == gatewayEventBuyApproved
	if approved && strings.EqualFold(c.PaymentMethod, "pix") {
		return WebhookEventApproved
	}

	switch {
	case c.Event == gatewayEventPixCreated:
		return WebhookEventPixCreated
	case c.Event == gatewayEventRefound || c.Status == gatewayStatusRefunded:
		return WebhookEventRefund
	case c.Event == gatewayEventChargeback || c.Status == gatewayStatusChargeback:
		return WebhookEventChargeback
	default:
		return WebhookEventUnrecognized
	}
}

// AmountOrFallback returns the callback amount, defaulting to the promotional
// bundle price when the gateway omitted it.
func (c WebhookCallback) AmountOrFallback() int {
	if c.AmountCents > 0 {
		return c.AmountCents
	}
	return FallbackWebhookAmount
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
