package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sabores_pix/internal/adapter/http/handlers/mocks"
	"sabores_pix/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDiagnosticsHandler_TestGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	report := usecase.DiagnosticsReport{
		Timestamp: time.Now().UTC(),
		Endpoint:  "https://app.for4payments.com.br/api/v1/transaction.purchase",
		Tests: []usecase.DiagnosticCheck{
			{Test: "API Key Configuration", Status: "✅ PASS", Details: "Configured (36 chars)"},
		},
		Recommendations: []string{"Verify For4Payments account is active and approved"},
	}

	uc := mocks.NewMockIDiagnosticsUseCase(ctrl)
	uc.EXPECT().RunDiagnostics(gomock.Any(), "example.com").Return(report)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/test-for4payments", NewDiagnosticsHandler(uc).TestGateway)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/test-for4payments", nil)
	req.Host = "example.com"
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if body["endpoint"] != report.Endpoint {
		t.Fatalf("unexpected endpoint: %v", body["endpoint"])
	}
	tests, ok := body["tests"].([]any)
	if !ok || len(tests) != 1 {
		t.Fatalf("unexpected tests: %v", body["tests"])
	}
	if body["recommendations"] == nil {
		t.Fatalf("expected recommendations in body")
	}
}
