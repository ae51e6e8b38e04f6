package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"sabores_pix/internal/domain/entities"
	"sabores_pix/internal/usecase/interfaces"
)

// ErrCallbackURLNotConfigured means PUBLIC_BASE_URL was not set, so there is
// no absolute URL to register with the gateway.
var ErrCallbackURLNotConfigured = errors.New("webhook callback url not configured")

// IWebhookUseCase processes asynchronous payment-state callbacks from the
// gateway, propagates approved PIX payments to analytics, and manages the
// callback registration with the gateway.
//
// Callback processing is stateless and idempotency-unaware: a replayed
// approval emits a second identical "paid" event, which the analytics
// receiver deduplicates by orderId.
type IWebhookUseCase interface {
	ProcessCallback(ctx context.Context, cb entities.WebhookCallback, clientIP string) (entities.WebhookEventKind, error)
	RegisterCallback(ctx context.Context) (webhookURL string, result string, err error)
}

type WebhookUseCase struct {
	notifier    interfaces.IAnalyticsNotifier
	gateway     interfaces.IPaymentGateway
	callbackURL string
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(notifier interfaces.IAnalyticsNotifier, gateway interfaces.IPaymentGateway, callbackURL string) *WebhookUseCase {
	return &WebhookUseCase{notifier: notifier, gateway: gateway, callbackURL: callbackURL}
}

// RegisterCallback registers the service's webhook URL with the gateway and
// returns the gateway's raw response alongside the registered URL.
func (u *WebhookUseCase) RegisterCallback(ctx context.Context) (string, string, error) {
	if u.gateway == nil || !u.gateway.Configured() {
		return "", "", interfaces.ErrGatewayNotConfigured
	}
	if u.callbackURL == "" {
		return "", "", ErrCallbackURLNotConfigured
	}
	result, err := u.gateway.RegisterWebhook(ctx, u.callbackURL)
	if err != nil {
		log.Printf("[webhook][usecase] register callback failed url=%s err=%v", u.callbackURL, err)
		return "", "", err
	}
	log.Printf("[webhook][usecase] callback registered url=%s", u.callbackURL)
	return u.callbackURL, result, nil
}

// ProcessCallback classifies the callback and acts on the recognized kinds.
// Only approved PIX payments trigger an analytics event; created/refund/
// chargeback events are acknowledged and logged, matching the storefront's
// original product decision.
func (u *WebhookUseCase) ProcessCallback(_ context.Context, cb entities.WebhookCallback, clientIP string) (entities.WebhookEventKind, error) {
	kind := cb.Classify()
	log.Printf("[webhook][usecase] processing event=%s status=%s method=%s transaction_id=%s kind=%s", cb.Event, cb.Status, cb.PaymentMethod, cb.TransactionID, kind)

	switch kind {
	case entities.WebhookEventApproved:
		if u.notifier != nil {
			u.notifier.NotifyOrderAsync(u.paidEvent(cb, clientIP))
		}
	case entities.WebhookEventPixCreated:
		log.Printf("[webhook][usecase] pix created transaction_id=%s", cb.TransactionID)
	case entities.WebhookEventRefund:
		log.Printf("[webhook][usecase] refund received transaction_id=%s", cb.TransactionID)
	case entities.WebhookEventChargeback:
		log.Printf("[webhook][usecase] chargeback received transaction_id=%s", cb.TransactionID)
	default:
		log.Printf("[webhook][usecase] unrecognized callback event=%s status=%s", cb.Event, cb.Status)
	}

	return kind, nil
}

func (u *WebhookUseCase) paidEvent(cb entities.WebhookCallback, clientIP string) entities.OrderEvent {
	amountCents := cb.AmountOrFallback()

	customer := entities.OrderCustomer{
		Name:    "Cliente",
		Email:   "cliente@email.com",
		Country: entities.CountryBR,
		IP:      clientIP,
	}
	if cb.Customer.Name != "" {
		customer.Name = cb.Customer.Name
	}
	if cb.Customer.Email != "" {
		customer.Email = cb.Customer.Email
	}
	if cb.Customer.Phone != "" {
		phone := cb.Customer.Phone
		customer.Phone = &phone
	}
	if cb.Customer.Document != "" {
		document := cb.Customer.Document
		customer.Document = &document
	}

	return entities.OrderEvent{
		OrderID:       cb.TransactionID,
		Platform:      entities.Platform,
		PaymentMethod: entities.PaymentMethodPix,
		Status:        entities.OrderStatusPaid,
		CreatedAt:     entities.NewEventTime(parseCallbackTime(cb.CreatedAt)),
		ApprovedDate:  entities.NewEventTime(time.Now()),
		RefundedAt:    nil,
		Customer:      customer,
		Products:      entities.BundleProduct(amountCents),
		Commission:    entities.SplitCommission(amountCents),
		IsTest:        false,
	}
}

// parseCallbackTime accepts the creation timestamp layouts the gateway has
// used, falling back to now.
func parseCallbackTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now()
}
