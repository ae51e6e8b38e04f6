package response

import "sabores_pix/internal/domain/entities"

// PixPaymentResponse is the normalized payment-intent payload returned to the
// storefront. Pointer fields serialize null when the gateway omitted them,
// matching what the checkout UI expects.
type PixPaymentResponse struct {
	PixQrCode     *string `json:"pixQrCode"`
	PixCode       *string `json:"pixCode"`
	TransactionID string  `json:"transactionId"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	ExpiresAt     *string `json:"expiresAt"`
}

func FromPaymentIntent(p entities.PaymentIntent) PixPaymentResponse {
	return PixPaymentResponse{
		PixQrCode:     nullableString(p.QRCode),
		PixCode:       nullableString(p.PixCode),
		TransactionID: p.TransactionID,
		Status:        p.Status,
		Amount:        p.AmountReais,
		ExpiresAt:     nullableString(p.ExpiresAt),
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
