package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	request "sabores_pix/internal/adapter/http/dto/request"
	response "sabores_pix/internal/adapter/http/dto/response"
	"sabores_pix/internal/usecase"
	"sabores_pix/internal/usecase/interfaces"
	"sabores_pix/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)

// PixPaymentHandler handles HTTP requests for PIX payment-intent creation.
type PixPaymentHandler struct {
	usecase usecase.IPixPaymentUseCase
}

func NewPixPaymentHandler(uc usecase.IPixPaymentUseCase) *PixPaymentHandler {
	return &PixPaymentHandler{usecase: uc}
}

// CreatePixPayment validates the checkout payload, creates the payment intent
// at the gateway and returns the normalized PIX data.
//
// @Summary      Create a PIX payment intent
// @Accept       json
// @Produce      json
// @Param        payload  body  request.PixPaymentRequest  true  "checkout data"
// @Success      200  {object}  response.PixPaymentResponse
// @Failure      400  {object}  pkg.HTTPErrorBody
// @Failure      500  {object}  pkg.HTTPErrorBody
// @Router       /api/create-pix-payment [post]
func (h *PixPaymentHandler) CreatePixPayment(c *gin.Context) {
	var payload request.PixPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] create start email=%s amount=%.2f", payload.Email, payload.ResolveAmount())

	cmd := payload.ToPaymentIntentRequest(clientIP(c.Request), request.TrackingFromQuery(c.Request.URL.Query()))
	intent, err := h.usecase.CreatePayment(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[payment][handler] create failed err=%v", err)
		appErr := mapPixPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success transaction_id=%s status=%s", intent.TransactionID, intent.Status)

	c.JSON(http.StatusOK, response.FromPaymentIntent(intent))
}

func mapPixPaymentError(err error) *pkg.AppError {
	var docErr *usecase.InvalidDocumentError
	var phoneErr *usecase.InvalidPhoneError
	var gwErr *interfaces.GatewayError

	switch {
	case errors.Is(err, usecase.ErrMissingRequiredFields):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Campos obrigatórios: nome, email, cpf, telefone", http.StatusBadRequest)
	case errors.As(err, &docErr):
		return pkg.NewDomainErrorSimple("INVALID_CPF", "CPF deve ter exatamente 11 dígitos", http.StatusBadRequest).
			WithDetails(fmt.Sprintf("CPF fornecido tem %d dígitos", docErr.Digits))
	case errors.As(err, &phoneErr):
		return pkg.NewDomainErrorSimple("INVALID_PHONE", "Telefone deve ter entre 8 e 12 dígitos", http.StatusBadRequest).
			WithDetails(fmt.Sprintf("Telefone fornecido tem %d dígitos", phoneErr.Digits))
	case errors.Is(err, interfaces.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Configuração da API não encontrada", http.StatusInternalServerError).
			WithDetails("FOR4PAYMENTS_API_KEY não configurada")
	case errors.As(err, &gwErr):
		return mapGatewayError(gwErr, err)
	case errors.Is(err, interfaces.ErrInvalidGatewayResponse):
		return pkg.NewDomainError("GATEWAY_INVALID_RESPONSE", "Resposta inválida da API For4Payments", err, http.StatusInternalServerError).
			WithDetails("Resposta não é um JSON válido")
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno do servidor", err, http.StatusInternalServerError)
	}
}

// mapGatewayError keeps the 500-class vendor failure (with remediation hints)
// distinct from a 4xx-class vendor rejection.
func mapGatewayError(gwErr *interfaces.GatewayError, err error) *pkg.AppError {
	if gwErr.StatusCode >= 500 {
		message := gwErr.Message
		if message == "" {
			message = "Erro ao processar pagamento"
		}
		return pkg.NewDomainError("GATEWAY_INTERNAL_ERROR", "Erro interno da For4Payments", err, http.StatusInternalServerError).
			WithDetails(map[string]any{
				"status":      gwErr.StatusCode,
				"code":        gwErr.Code,
				"details":     message,
				"suggestions": gwErr.Suggestions,
			})
	}

	return pkg.NewDomainError("GATEWAY_ERROR", "Erro na API For4Payments", err, http.StatusInternalServerError).
		WithDetails(map[string]any{
			"status":  gwErr.StatusCode,
			"details": gwErr.RawBody,
		})
}

// clientIP resolves the customer's address the way the original deployment's
// proxy stack populated it: first X-Forwarded-For hop, then X-Real-Ip.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if rip := r.Header.Get("X-Real-Ip"); rip != "" {
		return rip
	}
	return "127.0.0.1"
}
