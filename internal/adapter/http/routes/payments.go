package routes

import (
	"sabores_pix/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCreatePayment = "/create-pix-payment"
	PathWebhook       = "/webhook-for4payments"
	PathWebhookAlt    = "/webhook/for4payments"
	PathSetupWebhook  = "/setup-for4payments-webhook"
	PathDiagnostics   = "/test-for4payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PixPaymentHandler, webhookHandler *handlers.WebhookHandler, diagnosticsHandler *handlers.DiagnosticsHandler) {
	rg.POST(PathCreatePayment, paymentHandler.CreatePixPayment)

	// The gateway has been configured with both spellings of the callback
	// path over time; keep both mounted.
	rg.POST(PathWebhook, webhookHandler.HandleCallback)
	rg.GET(PathWebhook, webhookHandler.Liveness)
	rg.POST(PathWebhookAlt, webhookHandler.HandleCallback)
	rg.GET(PathWebhookAlt, webhookHandler.Liveness)

	rg.POST(PathSetupWebhook, webhookHandler.SetupWebhook)
	rg.GET(PathDiagnostics, diagnosticsHandler.TestGateway)
}
