package entities

import "math"

// Business constants carried over from the storefront configuration.
//
// The 500-cent minimum charge and the 5%/95% commission split have no documented
// source; they are pending confirmation with the product owner and must not be
// copied into other integrations as-is.
const (
	MinimumAmountCents    = 500
	GatewayFeeRate        = 0.05
	UserCommissionRate    = 0.95
	DefaultAmountReais    = 97.0
	Platform              = "SaboresDeMinas"
	PaymentMethodPix      = "pix"
	CountryBR             = "BR"
	ProductID             = "conjunto-3-manteigas"
	ProductName           = "Conjunto 3 Manteigas Sabores de Minas"
	FallbackWebhookAmount = 6990
)

// PaymentIntentStatus values returned to the storefront. The gateway status is
// passed through verbatim when present; "pending" is only the absence fallback.
const PaymentStatusPending = "pending"

// PaymentIntent is the normalized result of a PIX purchase creation.
//
// Nothing here is persisted; the storefront holds it in memory while the
// customer scans the QR code.
type PaymentIntent struct {
	TransactionID string
	QRCode        string
	PixCode       string
	Status        string
	AmountReais   float64
	ExpiresAt     string

	// GeneratedID marks a locally generated placeholder TransactionID, set when
	// the gateway response carried no id. It must never be treated as an
	// authoritative gateway reference.
	GeneratedID bool
}

// AmountToCents converts a value in reais to integer cents, flooring at the
// minimum chargeable amount.
func AmountToCents(amountReais float64) int {
	cents := int(math.Round(amountReais * 100))
	if cents < MinimumAmountCents {
		return MinimumAmountCents
	}
	return cents
}

// Commission is the revenue split reported to the analytics receiver.
//
// Fee and commission are rounded independently, so their sum may drift from the
// total by a cent; the receiver tolerates that.
type Commission struct {
	TotalPriceInCents     int `json:"totalPriceInCents"`
	GatewayFeeInCents     int `json:"gatewayFeeInCents"`
	UserCommissionInCents int `json:"userCommissionInCents"`
}

// SplitCommission computes the gateway/user split for a total in cents.
func SplitCommission(totalCents int) Commission {
	return Commission{
		TotalPriceInCents:     totalCents,
		GatewayFeeInCents:     int(math.Round(float64(totalCents) * GatewayFeeRate)),
		UserCommissionInCents: int(math.Round(float64(totalCents) * UserCommissionRate)),
	}
}
