package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"sabores_pix/internal/domain/entities"
	"sabores_pix/internal/usecase/interfaces"
)

func testOrder() entities.PurchaseOrder {
	return entities.PurchaseOrder{
		Name:        "Maria Silva",
		Email:       "maria@email.com",
		CPF:         "12345678901",
		Phone:       "11999999999",
		AmountCents: 6990,
		Items: []entities.PurchaseItem{{
			UnitPrice: 6990,
			Title:     "Conjunto 3 Manteigas Sabores de Minas",
			Quantity:  1,
			Tangible:  false,
		}},
		ExternalID:  "order_1716000000000",
		PostbackURL: "https://example.com/api/webhook-for4payments",
	}
}

func TestGateway_CreatePurchase_Success(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction.purchase" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "test-key" {
			t.Errorf("unexpected authorization %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
		}
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &gotBody); err != nil {
			t.Errorf("request body is not json: %v", err)
		}
		w.Write([]byte(`{"id":"tx1","status":"waiting_payment","qrCode":"data:image/png;base64,abc","qrCodeText":"00020126...","expiresAt":"2024-05-17T14:00:00Z"}`))
	}))
	defer server.Close()

	g := NewGateway(Config{BaseURL: server.URL, APIKey: "test-key"}, nil)
	tx, err := g.CreatePurchase(context.Background(), testOrder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tx.ID != "tx1" || tx.Status != "waiting_payment" {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	if tx.QRCode != "data:image/png;base64,abc" || tx.PixCode != "00020126..." {
		t.Fatalf("unexpected pix fields: %+v", tx)
	}
	if tx.ExpiresAt != "2024-05-17T14:00:00Z" {
		t.Fatalf("unexpected expiresAt: %q", tx.ExpiresAt)
	}

	if gotBody["paymentMethod"] != "PIX" || gotBody["traceable"] != true {
		t.Fatalf("unexpected request body: %v", gotBody)
	}
	if gotBody["amount"] != float64(6990) {
		t.Fatalf("expected amount in cents, got %v", gotBody["amount"])
	}
	if gotBody["externalId"] != "order_1716000000000" {
		t.Fatalf("unexpected externalId: %v", gotBody["externalId"])
	}
	if gotBody["postbackUrl"] != "https://example.com/api/webhook-for4payments" {
		t.Fatalf("unexpected postbackUrl: %v", gotBody["postbackUrl"])
	}
	if _, present := gotBody["cep"]; present {
		t.Fatalf("empty address fields must be omitted: %v", gotBody)
	}
}

func TestGateway_CreatePurchase_FieldAliases(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"snake case", `{"transaction_id":"tx1","status":"pending","pix_qr_code":"qr","pix_code":"copy"}`},
		{"camel alternates", `{"transactionId":"tx1","status":"pending","pixQrCode":"qr","pixCode":"copy"}`},
		{"code fallback", `{"id":"tx1","status":"pending","qrCode":"qr","code":"copy"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			g := NewGateway(Config{BaseURL: server.URL, APIKey: "test-key"}, nil)
			tx, err := g.CreatePurchase(context.Background(), testOrder())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tx.ID != "tx1" || tx.QRCode != "qr" || tx.PixCode != "copy" {
				t.Fatalf("aliases not resolved: %+v", tx)
			}
		})
	}
}

func TestGateway_CreatePurchase_NumericID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":12345,"status":"pending"}`))
	}))
	defer server.Close()

	g := NewGateway(Config{BaseURL: server.URL, APIKey: "test-key"}, nil)
	tx, err := g.CreatePurchase(context.Background(), testOrder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.ID != "12345" {
		t.Fatalf("expected stringified id, got %q", tx.ID)
	}
}

func TestGateway_CreatePurchase_NotConfigured(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	g := NewGateway(Config{BaseURL: server.URL}, nil)
	if g.Configured() {
		t.Fatalf("gateway without key must report unconfigured")
	}
	_, err := g.CreatePurchase(context.Background(), testOrder())
	if !errors.Is(err, interfaces.ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("missing key must not reach the network, got %d calls", calls)
	}
}

func TestGateway_CreatePurchase_Rejection(t *testing.T) {
	t.Run("client error keeps vendor code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"code":"VALIDATION_ERROR","message":"cpf invalido"}`))
		}))
		defer server.Close()

		g := NewGateway(Config{BaseURL: server.URL, APIKey: "test-key"}, nil)
		_, err := g.CreatePurchase(context.Background(), testOrder())

		var gwErr *interfaces.GatewayError
		if !errors.As(err, &gwErr) {
			t.Fatalf("expected GatewayError, got %v", err)
		}
		if gwErr.StatusCode != 400 || gwErr.Code != "VALIDATION_ERROR" || gwErr.Message != "cpf invalido" {
			t.Fatalf("unexpected error: %+v", gwErr)
		}
		if len(gwErr.Suggestions) != 0 {
			t.Fatalf("4xx must not carry suggestions: %+v", gwErr)
		}
	})

	t.Run("server error carries remediation hints", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`<html>internal error</html>`))
		}))
		defer server.Close()

		g := NewGateway(Config{BaseURL: server.URL, APIKey: "test-key"}, nil)
		_, err := g.CreatePurchase(context.Background(), testOrder())

		var gwErr *interfaces.GatewayError
		if !errors.As(err, &gwErr) {
			t.Fatalf("expected GatewayError, got %v", err)
		}
		if gwErr.StatusCode != 500 || gwErr.Code != "INTERNAL_SERVER_ERROR" {
			t.Fatalf("unexpected error: %+v", gwErr)
		}
		if len(gwErr.Suggestions) == 0 {
			t.Fatalf("5xx must carry suggestions")
		}
	})
}

func TestGateway_CreatePurchase_NonJSONSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>maintenance</html>"))
	}))
	defer server.Close()

	g := NewGateway(Config{BaseURL: server.URL, APIKey: "test-key"}, nil)
	_, err := g.CreatePurchase(context.Background(), testOrder())
	if !errors.Is(err, interfaces.ErrInvalidGatewayResponse) {
		t.Fatalf("expected ErrInvalidGatewayResponse, got %v", err)
	}
}

func TestGateway_RegisterWebhook(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/webhook.create" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			raw, _ := io.ReadAll(r.Body)
			if err := json.Unmarshal(raw, &gotBody); err != nil {
				t.Errorf("request body is not json: %v", err)
			}
			w.Write([]byte(`{"id":"wh1"}`))
		}))
		defer server.Close()

		g := NewGateway(Config{BaseURL: server.URL, APIKey: "test-key"}, nil)
		result, err := g.RegisterWebhook(context.Background(), "https://example.com/api/webhook-for4payments")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != `{"id":"wh1"}` {
			t.Fatalf("unexpected result: %q", result)
		}

		if gotBody["callbackUrl"] != "https://example.com/api/webhook-for4payments" {
			t.Fatalf("unexpected callbackUrl: %v", gotBody["callbackUrl"])
		}
		for _, event := range []string{"onBuyApproved", "onRefound", "onChargeback", "onPixCreated"} {
			if gotBody[event] != true {
				t.Fatalf("expected %s enabled, got %v", event, gotBody[event])
			}
		}
	})

	t.Run("not configured", func(t *testing.T) {
		g := NewGateway(Config{}, nil)
		_, err := g.RegisterWebhook(context.Background(), "https://example.com/cb")
		if !errors.Is(err, interfaces.ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message":"no permission"}`))
		}))
		defer server.Close()

		g := NewGateway(Config{BaseURL: server.URL, APIKey: "test-key"}, nil)
		_, err := g.RegisterWebhook(context.Background(), "https://example.com/cb")
		var gwErr *interfaces.GatewayError
		if !errors.As(err, &gwErr) || gwErr.StatusCode != 403 {
			t.Fatalf("expected 403 GatewayError, got %v", err)
		}
	})
}

func TestReadString(t *testing.T) {
	raw := map[string]json.RawMessage{
		"empty":  json.RawMessage(`""`),
		"filled": json.RawMessage(`"value"`),
		"number": json.RawMessage(`42`),
	}
	if got := readString(raw, "missing", "empty", "filled"); got != "value" {
		t.Fatalf("expected first non-empty alias, got %q", got)
	}
	if got := readString(raw, "number"); got != "42" {
		t.Fatalf("expected stringified number, got %q", got)
	}
	if got := readString(raw, "missing"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
