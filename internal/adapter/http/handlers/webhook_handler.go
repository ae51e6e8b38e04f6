package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	response "sabores_pix/internal/adapter/http/dto/response"
	"sabores_pix/internal/domain/entities"
	"sabores_pix/internal/infrastructure/metrics"
	"sabores_pix/internal/usecase"
	"sabores_pix/internal/usecase/interfaces"
	"sabores_pix/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives For4Payments payment-state callbacks and exposes
// the registration endpoint.
type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
	metrics *metrics.Metrics
}

func NewWebhookHandler(uc usecase.IWebhookUseCase, metricRegistry *metrics.Metrics) *WebhookHandler {
	return &WebhookHandler{usecase: uc, metrics: metricRegistry}
}

// HandleCallback processes a gateway callback. The gateway retries on
// non-200, so every processable request is acknowledged with 200 regardless
// of what the event classified as; only an unhandled panic (caught by the
// recovery middleware) yields a 500.
//
// @Summary      Receive a For4Payments payment-state callback
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.WebhookAckResponse
// @Router       /api/webhook-for4payments [post]
func (h *WebhookHandler) HandleCallback(c *gin.Context) {
	var cb entities.WebhookCallback
	if err := c.ShouldBindJSON(&cb); err != nil {
		log.Printf("[webhook][handler] unparseable callback body err=%v", err)
		if h.metrics != nil {
			h.metrics.Errors.WithLabelValues("webhook").Inc()
		}
		c.JSON(http.StatusOK, response.WebhookAckResponse{
			Received:  true,
			Processed: false,
			Timestamp: time.Now().UTC(),
		})
		return
	}

	kind, err := h.usecase.ProcessCallback(c.Request.Context(), cb, clientIP(c.Request))
	if err != nil {
		log.Printf("[webhook][handler] processing failed transaction_id=%s err=%v", cb.TransactionID, err)
		c.JSON(http.StatusInternalServerError, pkg.NewDomainError("WEBHOOK_ERROR", "Error processing webhook", err, http.StatusInternalServerError).ToHTTPError())
		return
	}

	if h.metrics != nil {
		h.metrics.WebhookEvents.WithLabelValues(string(kind)).Inc()
	}

	c.JSON(http.StatusOK, response.WebhookAckResponse{
		Received:  true,
		Processed: true,
		Event:     cb.Event,
		Status:    cb.Status,
		Timestamp: time.Now().UTC(),
	})
}

// Liveness answers the gateway's GET validation probe.
func (h *WebhookHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, response.WebhookLivenessResponse{
		Status:    "webhook_active",
		Timestamp: time.Now().UTC(),
	})
}

// SetupWebhook registers this service's callback URL with the gateway.
//
// @Summary      Register the payment-state webhook with For4Payments
// @Produce      json
// @Success      200  {object}  response.WebhookSetupResponse
// @Failure      500  {object}  pkg.HTTPErrorBody
// @Router       /api/setup-for4payments-webhook [post]
func (h *WebhookHandler) SetupWebhook(c *gin.Context) {
	webhookURL, result, err := h.usecase.RegisterCallback(c.Request.Context())
	if err != nil {
		appErr := mapWebhookSetupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.WebhookSetupResponse{
		Success:    true,
		Message:    "Webhook configurado com sucesso",
		WebhookURL: webhookURL,
		Events:     []string{"onBuyApproved", "onRefound", "onChargeback", "onPixCreated"},
		Result:     rawOrString(result),
	})
}

func mapWebhookSetupError(err error) *pkg.AppError {
	var gwErr *interfaces.GatewayError
	switch {
	case errors.Is(err, interfaces.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "FOR4PAYMENTS_API_KEY não configurada", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrCallbackURLNotConfigured):
		return pkg.NewDomainErrorSimple("CALLBACK_URL_NOT_CONFIGURED", "PUBLIC_BASE_URL não configurada", http.StatusInternalServerError)
	case errors.As(err, &gwErr):
		// Pass the gateway status through so operators see the vendor verdict.
		return pkg.NewDomainError("WEBHOOK_SETUP_FAILED", "Erro ao criar webhook", err, gwErr.StatusCode).
			WithDetails(map[string]any{
				"status":          gwErr.StatusCode,
				"details":         gwErr.RawBody,
				"troubleshooting": "Verifique se a conta For4Payments está ativa e com permissões para criar webhooks",
			})
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}

// rawOrString exposes a vendor response body as parsed JSON when possible,
// or as the raw string otherwise.
func rawOrString(body string) any {
	var parsed any
	if err := json.Unmarshal([]byte(body), &parsed); err == nil {
		return parsed
	}
	return body
}
