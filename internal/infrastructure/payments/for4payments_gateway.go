package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"sabores_pix/internal/domain/entities"
	"sabores_pix/internal/infrastructure/metrics"
	"sabores_pix/internal/usecase/interfaces"
)

const (
	purchaseEndpoint      = "transaction.purchase"
	webhookCreateEndpoint = "webhook.create"

	webhookName = "SaboresDeMinas Webhook"
)

// Field aliases observed across gateway responses. The gateway has shipped the
// same logical value under different spellings; each list is resolved in order
// by readString so the tolerance is declared (and tested) exactly once.
var (
	transactionIDAliases = []string{"id", "transactionId", "transaction_id"}
	qrCodeAliases        = []string{"qrCode", "pixQrCode", "pix_qr_code"}
	pixCodeAliases       = []string{"qrCodeText", "pixCode", "pix_code", "code"}
	statusAliases        = []string{"status"}
	expiresAtAliases     = []string{"expiresAt", "expires_at"}
)

// Remediation hints attached to 500-class gateway failures. Advisory text for
// operators, surfaced verbatim in the error body.
var serverErrorSuggestions = []string{
	"Verificar se a conta For4Payments está ativa e aprovada",
	"Confirmar se PIX está habilitado na conta",
	"Validar se a chave API não expirou",
}

// Config holds For4Payments client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Gateway is the For4Payments REST client.
type Gateway struct {
	baseURL string
	apiKey  string
	http    *http.Client
	metrics *metrics.Metrics
}

var _ interfaces.IPaymentGateway = (*Gateway)(nil)

// NewGateway creates a For4Payments client. A missing API key is tolerated
// here; CreatePurchase fails fast with ErrGatewayNotConfigured before any
// network call.
func NewGateway(cfg Config, metricRegistry *metrics.Metrics) *Gateway {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://app.for4payments.com.br/api/v1"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Gateway{
		baseURL: base,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		metrics: metricRegistry,
	}
}

func (g *Gateway) Configured() bool {
	return g.apiKey != ""
}

type purchaseRequestBody struct {
	Name          string                  `json:"name"`
	Email         string                  `json:"email"`
	CPF           string                  `json:"cpf"`
	Phone         string                  `json:"phone"`
	PaymentMethod string                  `json:"paymentMethod"`
	Amount        int                     `json:"amount"`
	Traceable     bool                    `json:"traceable"`
	Items         []entities.PurchaseItem `json:"items"`
	ExternalID    string                  `json:"externalId"`
	Cep           string                  `json:"cep,omitempty"`
	Street        string                  `json:"street,omitempty"`
	Number        string                  `json:"number,omitempty"`
	District      string                  `json:"district,omitempty"`
	City          string                  `json:"city,omitempty"`
	State         string                  `json:"state,omitempty"`
	Complement    string                  `json:"complement,omitempty"`
	PostbackURL   string                  `json:"postbackUrl,omitempty"`
}

// CreatePurchase submits a PIX purchase to transaction.purchase.
func (g *Gateway) CreatePurchase(ctx context.Context, order entities.PurchaseOrder) (entities.GatewayTransaction, error) {
	if !g.Configured() {
		log.Printf("[payment][gateway] missing FOR4PAYMENTS_API_KEY")
		return entities.GatewayTransaction{}, interfaces.ErrGatewayNotConfigured
	}

	body := purchaseRequestBody{
		Name:          order.Name,
		Email:         order.Email,
		CPF:           order.CPF,
		Phone:         order.Phone,
		PaymentMethod: "PIX",
		Amount:        order.AmountCents,
		Traceable:     true,
		Items:         order.Items,
		ExternalID:    order.ExternalID,
		Cep:           order.Cep,
		Street:        order.Street,
		Number:        order.Number,
		District:      order.District,
		City:          order.City,
		State:         order.State,
		Complement:    order.Complement,
		PostbackURL:   order.PostbackURL,
	}

	log.Printf("[payment][gateway] purchase start external_id=%s amount_cents=%d cpf=%s", order.ExternalID, order.AmountCents, maskCPF(order.CPF))

	status, respBody, err := g.post(ctx, purchaseEndpoint, body)
	if err != nil {
		return entities.GatewayTransaction{}, err
	}

	if status < 200 || status >= 300 {
		return entities.GatewayTransaction{}, g.rejectionError(status, respBody)
	}

	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(respBody, &raw); err != nil {
		log.Printf("[payment][gateway] purchase response is not json external_id=%s err=%v", order.ExternalID, err)
		return entities.GatewayTransaction{}, fmt.Errorf("%w: %v", interfaces.ErrInvalidGatewayResponse, err)
	}

	tx := entities.GatewayTransaction{
		ID:        readString(raw, transactionIDAliases...),
		Status:    readString(raw, statusAliases...),
		QRCode:    readString(raw, qrCodeAliases...),
		PixCode:   readString(raw, pixCodeAliases...),
		ExpiresAt: readString(raw, expiresAtAliases...),
		RawBody:   string(respBody),
	}
	log.Printf("[payment][gateway] purchase success external_id=%s transaction_id=%s status=%s", order.ExternalID, tx.ID, tx.Status)
	return tx, nil
}

// RegisterWebhook registers callbackURL for the payment-state events the
// inbound webhook handler understands.
func (g *Gateway) RegisterWebhook(ctx context.Context, callbackURL string) (string, error) {
	if !g.Configured() {
		return "", interfaces.ErrGatewayNotConfigured
	}

	body := map[string]any{
		"callbackUrl":   callbackURL,
		"name":          webhookName,
		"onBuyApproved": true,
		"onRefound":     true,
		"onChargeback":  true,
		"onPixCreated":  true,
	}
	log.Printf("[payment][gateway] webhook register start callback_url=%s", callbackURL)

	status, respBody, err := g.post(ctx, webhookCreateEndpoint, body)
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", g.rejectionError(status, respBody)
	}
	if !json.Valid(respBody) {
		return "", fmt.Errorf("%w: webhook.create body is not json", interfaces.ErrInvalidGatewayResponse)
	}
	log.Printf("[payment][gateway] webhook register success callback_url=%s", callbackURL)
	return string(respBody), nil
}

func (g *Gateway) post(ctx context.Context, endpoint string, body any) (int, []byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal %s request: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/"+endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", g.apiKey)

	start := time.Now()
	resp, err := g.http.Do(req)
	if err != nil {
		g.observe(endpoint, "transport_error", start)
		return 0, nil, fmt.Errorf("call %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		g.observe(endpoint, "read_error", start)
		return 0, nil, fmt.Errorf("read %s response: %w", endpoint, err)
	}

	g.observe(endpoint, fmt.Sprintf("%d", resp.StatusCode), start)
	return resp.StatusCode, respBody, nil
}

// rejectionError translates a non-2xx response into a GatewayError, keeping
// vendor code/message when the body was parseable JSON.
func (g *Gateway) rejectionError(status int, body []byte) *interfaces.GatewayError {
	gwErr := &interfaces.GatewayError{
		StatusCode: status,
		RawBody:    truncate(string(body), 200),
	}

	var parsed struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		gwErr.Code = parsed.Code
		gwErr.Message = parsed.Message
	}

	if status >= 500 {
		if gwErr.Code == "" {
			gwErr.Code = "INTERNAL_SERVER_ERROR"
		}
		gwErr.Suggestions = serverErrorSuggestions
	}

	log.Printf("[payment][gateway] request rejected status=%d code=%s message=%s", status, gwErr.Code, gwErr.Message)
	if g.metrics != nil {
		g.metrics.Errors.WithLabelValues("gateway").Inc()
	}
	return gwErr
}

func (g *Gateway) observe(endpoint, status string, start time.Time) {
	if g.metrics == nil {
		return
	}
	g.metrics.GatewayRequests.WithLabelValues(endpoint, status).Inc()
	g.metrics.GatewayLatency.WithLabelValues(endpoint, status).Observe(time.Since(start).Seconds())
}

// readString resolves the first present, non-empty string among the key
// aliases of one logical field.
func readString(raw map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		val, ok := raw[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(val, &s); err == nil && s != "" {
			return s
		}
		// Numeric ids are tolerated and stringified.
		var n json.Number
		if err := json.Unmarshal(val, &n); err == nil && n.String() != "" {
			return n.String()
		}
	}
	return ""
}

func maskCPF(cpf string) string {
	if len(cpf) <= 3 {
		return "***"
	}
	return cpf[:3] + "..."
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
