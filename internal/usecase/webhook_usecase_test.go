package usecase

import (
	"context"
	"errors"
	"testing"

	"sabores_pix/internal/domain/entities"
	"sabores_pix/internal/usecase/interfaces"
	mock_interfaces "sabores_pix/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWebhookUseCase_ProcessCallback_Approved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mock_interfaces.NewMockIAnalyticsNotifier(ctrl)
	uc := NewWebhookUseCase(notifier, nil, "")

	var capturedEvent entities.OrderEvent
	notifier.EXPECT().
		NotifyOrderAsync(gomock.Any()).
		Do(func(ev entities.OrderEvent) { capturedEvent = ev }).
		Times(1)

	cb := entities.WebhookCallback{
		Event:         "onBuyApproved",
		Status:        "APPROVED",
		PaymentMethod: "PIX",
		TransactionID: "tx1",
		AmountCents:   6990,
		Customer: entities.WebhookCustomer{
			Name:     "Maria Silva",
			Email:    "maria@email.com",
			Phone:    "11999999999",
			Document: "12345678901",
		},
	}

	kind, err := uc.ProcessCallback(context.Background(), cb, "203.0.113.7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != entities.WebhookEventApproved {
		t.Fatalf("expected approved, got %s", kind)
	}

	if capturedEvent.OrderID != "tx1" {
		t.Fatalf("expected orderId tx1, got %q", capturedEvent.OrderID)
	}
	if capturedEvent.Status != entities.OrderStatusPaid {
		t.Fatalf("expected paid status, got %q", capturedEvent.Status)
	}
	if capturedEvent.ApprovedDate == nil {
		t.Fatalf("expected approvedDate to be set")
	}
	if capturedEvent.Customer.Name != "Maria Silva" {
		t.Fatalf("unexpected customer: %+v", capturedEvent.Customer)
	}
	if capturedEvent.Customer.Phone == nil || *capturedEvent.Customer.Phone != "11999999999" {
		t.Fatalf("unexpected phone: %+v", capturedEvent.Customer.Phone)
	}
	if capturedEvent.Commission.TotalPriceInCents != 6990 {
		t.Fatalf("unexpected commission: %+v", capturedEvent.Commission)
	}
}

func TestWebhookUseCase_ProcessCallback_ApprovedDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mock_interfaces.NewMockIAnalyticsNotifier(ctrl)
	uc := NewWebhookUseCase(notifier, nil, "")

	var capturedEvent entities.OrderEvent
	notifier.EXPECT().
		NotifyOrderAsync(gomock.Any()).
		Do(func(ev entities.OrderEvent) { capturedEvent = ev }).
		Times(1)

	cb := entities.WebhookCallback{Status: "APPROVED", PaymentMethod: "pix", TransactionID: "tx2"}
	if _, err := uc.ProcessCallback(context.Background(), cb, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if capturedEvent.Customer.Name != "Cliente" || capturedEvent.Customer.Email != "cliente@email.com" {
		t.Fatalf("expected placeholder customer, got %+v", capturedEvent.Customer)
	}
	if capturedEvent.Customer.Phone != nil || capturedEvent.Customer.Document != nil {
		t.Fatalf("expected nil phone/document, got %+v", capturedEvent.Customer)
	}
	if capturedEvent.Commission.TotalPriceInCents != entities.FallbackWebhookAmount {
		t.Fatalf("expected fallback amount, got %+v", capturedEvent.Commission)
	}
}

func TestWebhookUseCase_ProcessCallback_NonApprovedKinds(t *testing.T) {
	cases := []struct {
		name string
		cb   entities.WebhookCallback
		want entities.WebhookEventKind
	}{
		{"pix created", entities.WebhookCallback{Event: "onPixCreated", PaymentMethod: "PIX"}, entities.WebhookEventPixCreated},
		{"refund", entities.WebhookCallback{Event: "onRefound"}, entities.WebhookEventRefund},
		{"chargeback", entities.WebhookCallback{Status: "CHARGEBACK"}, entities.WebhookEventChargeback},
		{"unrecognized", entities.WebhookCallback{Event: "onSomethingElse"}, entities.WebhookEventUnrecognized},
		{"approved without pix", entities.WebhookCallback{Status: "APPROVED", PaymentMethod: "card"}, entities.WebhookEventUnrecognized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No NotifyOrderAsync expectation: these kinds are acknowledged
			// without reaching analytics.
			notifier := mock_interfaces.NewMockIAnalyticsNotifier(ctrl)
			uc := NewWebhookUseCase(notifier, nil, "")

			kind, err := uc.ProcessCallback(context.Background(), tc.cb, "203.0.113.7")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kind != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, kind)
			}
		})
	}
}

func TestWebhookUseCase_RegisterCallback(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gateway.EXPECT().Configured().Return(false)

		uc := NewWebhookUseCase(nil, gateway, "https://example.com/api/webhook-for4payments")
		_, _, err := uc.RegisterCallback(context.Background())
		if !errors.Is(err, interfaces.ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("nil gateway", func(t *testing.T) {
		uc := NewWebhookUseCase(nil, nil, "")
		_, _, err := uc.RegisterCallback(context.Background())
		if !errors.Is(err, interfaces.ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("callback url not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// No RegisterWebhook expectation: a relative callback must never
		// reach the gateway.
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gateway.EXPECT().Configured().Return(true)

		uc := NewWebhookUseCase(nil, gateway, "")
		_, _, err := uc.RegisterCallback(context.Background())
		if !errors.Is(err, ErrCallbackURLNotConfigured) {
			t.Fatalf("expected ErrCallbackURLNotConfigured, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		callbackURL := "https://example.com/api/webhook-for4payments"
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gateway.EXPECT().Configured().Return(true)
		gateway.EXPECT().RegisterWebhook(gomock.Any(), callbackURL).Return(`{"id":"wh1"}`, nil)

		uc := NewWebhookUseCase(nil, gateway, callbackURL)
		url, result, err := uc.RegisterCallback(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != callbackURL {
			t.Fatalf("expected %q, got %q", callbackURL, url)
		}
		if result != `{"id":"wh1"}` {
			t.Fatalf("unexpected result: %q", result)
		}
	})

	t.Run("gateway error passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gwErr := &interfaces.GatewayError{StatusCode: 403, Message: "forbidden"}
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gateway.EXPECT().Configured().Return(true)
		gateway.EXPECT().RegisterWebhook(gomock.Any(), gomock.Any()).Return("", gwErr)

		uc := NewWebhookUseCase(nil, gateway, "https://example.com/api/webhook-for4payments")
		_, _, err := uc.RegisterCallback(context.Background())
		var got *interfaces.GatewayError
		if !errors.As(err, &got) || got.StatusCode != 403 {
			t.Fatalf("expected 403 GatewayError, got %v", err)
		}
	})
}

func TestParseCallbackTime(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		got := parseCallbackTime("2024-05-17T13:45:09Z")
		if got.Year() != 2024 || got.Month() != 5 || got.Second() != 9 {
			t.Fatalf("unexpected time: %v", got)
		}
	})

	t.Run("space separated", func(t *testing.T) {
		got := parseCallbackTime("2024-05-17 13:45:09")
		if got.Hour() != 13 || got.Minute() != 45 {
			t.Fatalf("unexpected time: %v", got)
		}
	})

	t.Run("garbage falls back to now", func(t *testing.T) {
		got := parseCallbackTime("not-a-date")
		if got.IsZero() {
			t.Fatalf("expected non-zero fallback")
		}
	})
}
