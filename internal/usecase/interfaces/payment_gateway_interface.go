package interfaces

import (
	"context"
	"errors"
	"fmt"

	"sabores_pix/internal/domain/entities"
)

var (
	// ErrGatewayNotConfigured means no API key was provided; callers must report
	// it as a local configuration problem, not a vendor rejection.
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")

	// ErrInvalidGatewayResponse means the gateway answered 2xx with a body that
	// is not valid JSON. Kept distinct from GatewayError so operators can tell
	// a broken response apart from a rejected request.
	ErrInvalidGatewayResponse = errors.New("invalid payment gateway response")
)

// GatewayError carries a non-2xx gateway rejection: the raw status, the
// vendor-supplied code/message when the body was parseable, and remediation
// suggestions for 500-class failures.
type GatewayError struct {
	StatusCode  int
	Code        string
	Message     string
	RawBody     string
	Suggestions []string
}

func (e *GatewayError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("gateway error %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("gateway error %d", e.StatusCode)
}

// IPaymentGateway abstracts the For4Payments API.
type IPaymentGateway interface {
	// CreatePurchase submits a PIX purchase. Failures are either a
	// *GatewayError, ErrInvalidGatewayResponse, ErrGatewayNotConfigured or a
	// transport error.
	CreatePurchase(ctx context.Context, order entities.PurchaseOrder) (entities.GatewayTransaction, error)

	// RegisterWebhook registers callbackURL for payment-state events and
	// returns the gateway's raw response body.
	RegisterWebhook(ctx context.Context, callbackURL string) (string, error)

	// Configured reports whether an API key is present, without any network call.
	Configured() bool
}
