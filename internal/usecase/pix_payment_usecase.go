package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"sabores_pix/internal/domain/entities"
	"sabores_pix/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	// ErrMissingRequiredFields means at least one of nome/email/cpf/telefone was
	// absent. Validation happens before any outbound call.
	ErrMissingRequiredFields = errors.New("missing required fields: nome, email, cpf, telefone")
)

const (
	cpfDigits      = 11
	phoneMinDigits = 8
	phoneMaxDigits = 12
)

// InvalidDocumentError reports a CPF whose digit count is not exactly 11.
type InvalidDocumentError struct {
	Digits int
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("cpf must have exactly %d digits, got %d", cpfDigits, e.Digits)
}

// InvalidPhoneError reports a phone whose digit count is outside 8..12.
type InvalidPhoneError struct {
	Digits int
}

func (e *InvalidPhoneError) Error() string {
	return fmt.Sprintf("phone must have between %d and %d digits, got %d", phoneMinDigits, phoneMaxDigits, e.Digits)
}

// IPixPaymentUseCase encapsulates the "create PIX payment intent" behavior:
// validate checkout input, submit the purchase to the gateway, emit the
// waiting_payment analytics event off the critical path, and normalize the
// result for the storefront.
type IPixPaymentUseCase interface {
	CreatePayment(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error)
}

type PixPaymentUseCase struct {
	gateway     interfaces.IPaymentGateway
	notifier    interfaces.IAnalyticsNotifier
	callbackURL string
}

var _ IPixPaymentUseCase = (*PixPaymentUseCase)(nil)

func NewPixPaymentUseCase(gateway interfaces.IPaymentGateway, notifier interfaces.IAnalyticsNotifier, callbackURL string) *PixPaymentUseCase {
	return &PixPaymentUseCase{gateway: gateway, notifier: notifier, callbackURL: callbackURL}
}

func (u *PixPaymentUseCase) CreatePayment(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error) {
	log.Printf("[payment][usecase] create start email=%s cpf=%s", req.Email, maskCPF(req.CPF))

	if strings.TrimSpace(req.Nome) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.CPF) == "" || strings.TrimSpace(req.Telefone) == "" {
		log.Printf("[payment][usecase] missing required fields")
		return entities.PaymentIntent{}, ErrMissingRequiredFields
	}

	cleanCPF := onlyDigits(req.CPF)
	if len(cleanCPF) != cpfDigits {
		log.Printf("[payment][usecase] invalid cpf digit count=%d", len(cleanCPF))
		return entities.PaymentIntent{}, &InvalidDocumentError{Digits: len(cleanCPF)}
	}

	cleanPhone := onlyDigits(req.Telefone)
	if len(cleanPhone) < phoneMinDigits || len(cleanPhone) > phoneMaxDigits {
		log.Printf("[payment][usecase] invalid phone digit count=%d", len(cleanPhone))
		return entities.PaymentIntent{}, &InvalidPhoneError{Digits: len(cleanPhone)}
	}

	if u.gateway == nil || !u.gateway.Configured() {
		log.Printf("[payment][usecase] gateway not configured")
		return entities.PaymentIntent{}, interfaces.ErrGatewayNotConfigured
	}

	amountReais := req.AmountReais
	if amountReais <= 0 {
		amountReais = entities.DefaultAmountReais
	}
	amountCents := entities.AmountToCents(amountReais)

	externalID := fmt.Sprintf("order_%d", time.Now().UnixMilli())
	order := entities.PurchaseOrder{
		Name:        strings.TrimSpace(req.Nome),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		CPF:         cleanCPF,
		Phone:       cleanPhone,
		AmountCents: amountCents,
		Items: []entities.PurchaseItem{{
			UnitPrice: amountCents,
			Title:     entities.ProductName,
			Quantity:  1,
			Tangible:  false,
		}},
		ExternalID:  externalID,
		PostbackURL: u.callbackURL,
		Cep:         strings.TrimSpace(req.Cep),
		Street:      strings.TrimSpace(req.Logradouro),
		Number:      strings.TrimSpace(req.Numero),
		District:    strings.TrimSpace(req.Bairro),
		City:        strings.TrimSpace(req.Cidade),
		State:       strings.TrimSpace(req.Estado),
		Complement:  strings.TrimSpace(req.Complemento),
	}

	tx, err := u.gateway.CreatePurchase(ctx, order)
	if err != nil {
		log.Printf("[payment][usecase] gateway purchase failed external_id=%s err=%v", externalID, err)
		return entities.PaymentIntent{}, err
	}

	orderID := tx.ID
	if orderID == "" {
		orderID = externalID
	}
	if u.notifier != nil {
		u.notifier.NotifyOrderAsync(u.waitingPaymentEvent(req, orderID, cleanCPF, cleanPhone, amountCents))
	}

	intent := entities.PaymentIntent{
		TransactionID: tx.ID,
		QRCode:        tx.QRCode,
		PixCode:       tx.PixCode,
		Status:        tx.Status,
		AmountReais:   amountReais,
		ExpiresAt:     tx.ExpiresAt,
	}
	if intent.TransactionID == "" {
		intent.TransactionID = "txn_" + uuid.NewString()
		intent.GeneratedID = true
	}
	if intent.Status == "" {
		intent.Status = entities.PaymentStatusPending
	}

	log.Printf("[payment][usecase] create success transaction_id=%s status=%s generated_id=%t", intent.TransactionID, intent.Status, intent.GeneratedID)
	return intent, nil
}

func (u *PixPaymentUseCase) waitingPaymentEvent(req entities.PaymentIntentRequest, orderID, cleanCPF, cleanPhone string, amountCents int) entities.OrderEvent {
	return entities.OrderEvent{
		OrderID:       orderID,
		Platform:      entities.Platform,
		PaymentMethod: entities.PaymentMethodPix,
		Status:        entities.OrderStatusWaitingPayment,
		CreatedAt:     entities.NewEventTime(time.Now()),
		Customer: entities.OrderCustomer{
			Name:     req.Nome,
			Email:    req.Email,
			Phone:    &cleanPhone,
			Document: &cleanCPF,
			Country:  entities.CountryBR,
			IP:       req.ClientIP,
		},
		Products:           entities.BundleProduct(amountCents),
		TrackingParameters: req.Tracking,
		Commission:         entities.SplitCommission(amountCents),
		IsTest:             false,
	}
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func maskCPF(cpf string) string {
	digits := onlyDigits(cpf)
	if len(digits) <= 3 {
		return "***"
	}
	return digits[:3] + "..."
}
