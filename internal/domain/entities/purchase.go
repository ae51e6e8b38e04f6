package entities

// PaymentIntentRequest is the validated-input side of a PIX purchase, built by
// the HTTP layer from the storefront checkout form.
//
// CPF and Telefone arrive as typed by the customer (masks included); the use
// case strips formatting before validating and transmitting.
type PaymentIntentRequest struct {
	Nome     string
	CPF      string
	Email    string
	Telefone string

	Cep         string
	Logradouro  string
	Numero      string
	Bairro      string
	Cidade      string
	Estado      string
	Complemento string

	AmountReais float64

	ClientIP string
	Tracking TrackingParameters
}

// PurchaseItem is one line item of the gateway purchase.
type PurchaseItem struct {
	UnitPrice int    `json:"unitPrice"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Tangible  bool   `json:"tangible"`
}

// PurchaseOrder is the normalized purchase submitted to the gateway. All
// monetary values are integer cents; CPF and Phone are digit-only.
type PurchaseOrder struct {
	Name        string
	Email       string
	CPF         string
	Phone       string
	AmountCents int
	Items       []PurchaseItem
	ExternalID  string
	PostbackURL string

	Cep        string
	Street     string
	Number     string
	District   string
	City       string
	State      string
	Complement string
}

// GatewayTransaction is the parsed gateway response for a created purchase.
// Fields the gateway omitted are empty; callers apply their own fallbacks.
type GatewayTransaction struct {
	ID        string
	Status    string
	QRCode    string
	PixCode   string
	ExpiresAt string

	// RawBody keeps the gateway's response verbatim for diagnostics.
	RawBody string
}
