package handlers

import (
	"net/http"

	"sabores_pix/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DiagnosticsHandler exposes the gateway connectivity probe.
type DiagnosticsHandler struct {
	usecase usecase.IDiagnosticsUseCase
}

func NewDiagnosticsHandler(uc usecase.IDiagnosticsUseCase) *DiagnosticsHandler {
	return &DiagnosticsHandler{usecase: uc}
}

// TestGateway runs a canned minimal purchase against the gateway and returns
// the structured report. Operational probe only.
//
// @Summary      Probe For4Payments connectivity and credentials
// @Produce      json
// @Success      200  {object}  usecase.DiagnosticsReport
// @Router       /api/test-for4payments [get]
func (h *DiagnosticsHandler) TestGateway(c *gin.Context) {
	report := h.usecase.RunDiagnostics(c.Request.Context(), c.Request.Host)
	c.JSON(http.StatusOK, report)
}
