package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"sabores_pix/internal/domain/entities"
	"sabores_pix/internal/usecase/interfaces"
)

// DiagnosticCheck is one line of the connectivity report.
type DiagnosticCheck struct {
	Test    string `json:"test"`
	Status  string `json:"status"`
	Details string `json:"details"`
}

// DiagnosticsReport is the structured result of the operational probe.
type DiagnosticsReport struct {
	Timestamp       time.Time         `json:"timestamp"`
	Endpoint        string            `json:"endpoint"`
	Tests           []DiagnosticCheck `json:"tests"`
	Recommendations []string          `json:"recommendations"`
}

const (
	checkPass  = "✅ PASS"
	checkFail  = "❌ FAIL"
	checkInfo  = "ℹ️ INFO"
	checkIssue = "🔍 ISSUE"
)

var diagnosticsRecommendations = []string{
	"Verify For4Payments account is active and approved",
	"Confirm PIX is enabled in your For4Payments account",
	"Check if API key is from production (not sandbox)",
	"Ensure account documents are validated",
	"Test with a different CPF if this one is blocked",
}

// IDiagnosticsUseCase runs a canned minimal purchase against the gateway to
// verify connectivity and credentials. Operational probe only; never part of
// the transactional flow.
type IDiagnosticsUseCase interface {
	RunDiagnostics(ctx context.Context, host string) DiagnosticsReport
}

type DiagnosticsUseCase struct {
	gateway     interfaces.IPaymentGateway
	apiKeyChars int
	endpoint    string
}

var _ IDiagnosticsUseCase = (*DiagnosticsUseCase)(nil)

// NewDiagnosticsUseCase builds the probe. apiKeyChars is the configured key
// length (0 when absent); endpoint is the purchase URL shown in the report.
func NewDiagnosticsUseCase(gateway interfaces.IPaymentGateway, apiKeyChars int, endpoint string) *DiagnosticsUseCase {
	return &DiagnosticsUseCase{gateway: gateway, apiKeyChars: apiKeyChars, endpoint: endpoint}
}

func (u *DiagnosticsUseCase) RunDiagnostics(ctx context.Context, host string) DiagnosticsReport {
	log.Printf("[diagnostics][usecase] probe start host=%s", host)
	report := DiagnosticsReport{
		Timestamp:       time.Now().UTC(),
		Endpoint:        u.endpoint,
		Recommendations: diagnosticsRecommendations,
	}

	configured := u.gateway != nil && u.gateway.Configured()
	keyCheck := DiagnosticCheck{Test: "API Key Configuration", Status: checkFail, Details: "Not configured in environment variables"}
	if configured {
		keyCheck.Status = checkPass
		keyCheck.Details = fmt.Sprintf("Configured (%d chars)", u.apiKeyChars)
	}
	report.Tests = append(report.Tests, keyCheck)

	if configured {
		report.Tests = append(report.Tests, u.probePurchase(ctx)...)
	}

	report.Tests = append(report.Tests, DiagnosticCheck{
		Test:    "Environment",
		Status:  checkInfo,
		Details: fmt.Sprintf("Host: %s", host),
	})

	return report
}

func (u *DiagnosticsUseCase) probePurchase(ctx context.Context) []DiagnosticCheck {
	order := entities.PurchaseOrder{
		Name:        "Teste API",
		Email:       "teste@teste.com",
		CPF:         "12345678901",
		Phone:       "11999999999",
		AmountCents: entities.MinimumAmountCents,
		Items: []entities.PurchaseItem{{
			UnitPrice: entities.MinimumAmountCents,
			Title:     "Teste de Conectividade",
			Quantity:  1,
			Tangible:  false,
		}},
		ExternalID: fmt.Sprintf("test_%d", time.Now().UnixMilli()),
	}

	tx, err := u.gateway.CreatePurchase(ctx, order)
	if err == nil {
		return []DiagnosticCheck{{
			Test:    "API Connection",
			Status:  checkPass,
			Details: fmt.Sprintf("Status: 200, Response: %s", truncate(tx.RawBody, 200)),
		}}
	}

	var gwErr *interfaces.GatewayError
	if !errors.As(err, &gwErr) {
		return []DiagnosticCheck{{
			Test:    "API Connection",
			Status:  checkFail,
			Details: fmt.Sprintf("Network error: %v", err),
		}}
	}

	checks := []DiagnosticCheck{{
		Test:    "API Connection",
		Status:  checkFail,
		Details: fmt.Sprintf("Status: %d, Response: %s", gwErr.StatusCode, truncate(gwErr.RawBody, 200)),
	}}

	analysis := truncate(gwErr.RawBody, 100)
	if gwErr.Code != "" || gwErr.Message != "" {
		code := gwErr.Code
		if code == "" {
			code = "ERROR"
		}
		message := gwErr.Message
		if message == "" {
			message = "No message"
		}
		analysis = fmt.Sprintf("%s: %s", code, message)
	} else if len(gwErr.RawBody) > 100 {
		analysis = "HTML/Non-JSON response"
	}
	checks = append(checks, DiagnosticCheck{Test: "Error Analysis", Status: checkInfo, Details: analysis})

	switch {
	case gwErr.StatusCode == 401:
		checks = append(checks, DiagnosticCheck{Test: "Diagnosis", Status: checkIssue, Details: "Authentication failed - Check if API key is correct and active"})
	case gwErr.StatusCode >= 500:
		checks = append(checks, DiagnosticCheck{Test: "Diagnosis", Status: checkIssue, Details: "Server error - Account may not be approved or PIX not enabled"})
	case gwErr.StatusCode == 400:
		checks = append(checks, DiagnosticCheck{Test: "Diagnosis", Status: checkIssue, Details: "Bad request - Data validation failed"})
	}

	return checks
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
