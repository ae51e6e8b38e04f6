package entities

import (
	"encoding/json"
	"testing"
)

func TestWebhookCallback_Classify(t *testing.T) {
	cases := []struct {
		name string
		cb   WebhookCallback
		want WebhookEventKind
	}{
		{"approved status with PIX", WebhookCallback{Status: "APPROVED", PaymentMethod: "PIX"}, WebhookEventApproved},
		{"approved event with lowercase pix", WebhookCallback{Event: "onBuyApproved", PaymentMethod: "pix"}, WebhookEventApproved},
		{"approved with mixed-case method", WebhookCallback{Status: "APPROVED", PaymentMethod: "Pix"}, WebhookEventApproved},
		{"approved without pix marker", WebhookCallback{Status: "APPROVED", PaymentMethod: "card"}, WebhookEventUnrecognized},
		{"pix created", WebhookCallback{Event: "onPixCreated", PaymentMethod: "PIX"}, WebhookEventPixCreated},
		{"refund by event", WebhookCallback{Event: "onRefound"}, WebhookEventRefund},
		{"refund by status", WebhookCallback{Status: "REFUNDED"}, WebhookEventRefund},
		{"chargeback by event", WebhookCallback{Event: "onChargeback"}, WebhookEventChargeback},
		{"chargeback by status", WebhookCallback{Status: "CHARGEBACK"}, WebhookEventChargeback},
		{"unrecognized", WebhookCallback{Event: "onSomethingElse", Status: "PENDING"}, WebhookEventUnrecognized},
		{"empty", WebhookCallback{}, WebhookEventUnrecognized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cb.Classify(); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestWebhookCallback_UnmarshalAliases(t *testing.T) {
	t.Run("event and method keys", func(t *testing.T) {
		var cb WebhookCallback
		err := json.Unmarshal([]byte(`{"event":"onBuyApproved","method":"PIX","id":"tx1","amount":6990}`), &cb)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cb.Event != "onBuyApproved" || cb.PaymentMethod != "PIX" || cb.TransactionID != "tx1" || cb.AmountCents != 6990 {
			t.Fatalf("unexpected callback: %+v", cb)
		}
	})

	t.Run("type and paymentMethod keys", func(t *testing.T) {
		var cb WebhookCallback
		err := json.Unmarshal([]byte(`{"type":"onPixCreated","paymentMethod":"pix","customer":{"name":"Ana","document":"12345678901"}}`), &cb)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cb.Event != "onPixCreated" || cb.PaymentMethod != "pix" {
			t.Fatalf("unexpected callback: %+v", cb)
		}
		if cb.Customer.Name != "Ana" || cb.Customer.Document != "12345678901" {
			t.Fatalf("unexpected customer: %+v", cb.Customer)
		}
	})

	t.Run("float amount tolerated", func(t *testing.T) {
		var cb WebhookCallback
		if err := json.Unmarshal([]byte(`{"amount":6990.0}`), &cb); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cb.AmountCents != 6990 {
			t.Fatalf("expected 6990, got %d", cb.AmountCents)
		}
	})
}

func TestWebhookCallback_AmountOrFallback(t *testing.T) {
	if got := (WebhookCallback{AmountCents: 1234}).AmountOrFallback(); got != 1234 {
		t.Fatalf("expected 1234, got %d", got)
	}
	if got := (WebhookCallback{}).AmountOrFallback(); got != FallbackWebhookAmount {
		t.Fatalf("expected fallback %d, got %d", FallbackWebhookAmount, got)
	}
}
