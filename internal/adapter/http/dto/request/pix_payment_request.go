package request

import (
	"net/url"

	"sabores_pix/internal/domain/entities"
)

// PixPaymentItemRequest is one checkout line item as the storefront UI sends
// it. Accepted for payload compatibility only; the purchase always charges the
// fixed promotional bundle priced by Amount.
type PixPaymentItemRequest struct {
	UnitPrice float64 `json:"unitPrice"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	Tangible  bool    `json:"tangible"`
}

// PixPaymentRequest is the checkout payload posted by the storefront UI.
// Field names follow the form the UI already sends (Portuguese keys).
type PixPaymentRequest struct {
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`

	Cep         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	Complemento string `json:"complemento"`

	Amount float64                 `json:"amount"`
	Items  []PixPaymentItemRequest `json:"items"`
}

// ResolveAmount applies the promotional default when the UI omitted the value.
func (r PixPaymentRequest) ResolveAmount() float64 {
	if r.Amount > 0 {
		return r.Amount
	}
	return entities.DefaultAmountReais
}

// ToPaymentIntentRequest translates the payload into the domain command. The
// use case owns digit stripping and validation; this is a plain mapping.
func (r PixPaymentRequest) ToPaymentIntentRequest(clientIP string, tracking entities.TrackingParameters) entities.PaymentIntentRequest {
	return entities.PaymentIntentRequest{
		Nome:        r.Nome,
		CPF:         r.CPF,
		Email:       r.Email,
		Telefone:    r.Telefone,
		Cep:         r.Cep,
		Logradouro:  r.Logradouro,
		Numero:      r.Numero,
		Bairro:      r.Bairro,
		Cidade:      r.Cidade,
		Estado:      r.Estado,
		Complemento: r.Complemento,
		AmountReais: r.ResolveAmount(),
		ClientIP:    clientIP,
		Tracking:    tracking,
	}
}

// TrackingFromQuery copies the attribution parameters present on the request
// URL. Absent parameters stay nil so the analytics payload serializes null.
func TrackingFromQuery(values url.Values) entities.TrackingParameters {
	pick := func(key string) *string {
		if !values.Has(key) {
			return nil
		}
		v := values.Get(key)
		if v == "" {
			return nil
		}
		return &v
	}

	return entities.TrackingParameters{
		Src:         pick("src"),
		Sck:         pick("sck"),
		UTMSource:   pick("utm_source"),
		UTMCampaign: pick("utm_campaign"),
		UTMMedium:   pick("utm_medium"),
		UTMContent:  pick("utm_content"),
		UTMTerm:     pick("utm_term"),
	}
}
