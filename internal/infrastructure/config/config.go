package config

import (
	"os"
	"strings"
	"time"
)

// Config holds all environment-sourced settings, loaded once at startup and
// injected into component constructors. Handlers never read the environment.
//
// Both credentials are optional: a missing gateway key surfaces as a
// configuration error on payment creation, a missing analytics token silently
// disables order-event delivery.
type Config struct {
	Port string

	For4PaymentsAPIKey  string
	For4PaymentsBaseURL string
	GatewayTimeout      time.Duration

	UtmifyAPIToken string
	UtmifyBaseURL  string
	UtmifyTimeout  time.Duration

	// PublicBaseURL is the externally reachable base of this service, used to
	// build the postback URL sent to the gateway (e.g. https://shop.example.com).
	PublicBaseURL string

	MetricsNamespace string
}

const (
	defaultFor4PaymentsBaseURL = "https://app.for4payments.com.br/api/v1"
	defaultUtmifyBaseURL       = "https://api.utmify.com.br"
	defaultGatewayTimeout      = 30 * time.Second
	defaultUtmifyTimeout       = 10 * time.Second
)

// Load builds the Config from environment variables, applying defaults.
func Load() Config {
	return Config{
		Port:                getenvDefault("PORT", "8080"),
		For4PaymentsAPIKey:  strings.TrimSpace(os.Getenv("FOR4PAYMENTS_API_KEY")),
		For4PaymentsBaseURL: strings.TrimRight(getenvDefault("FOR4PAYMENTS_BASE_URL", defaultFor4PaymentsBaseURL), "/"),
		GatewayTimeout:      defaultGatewayTimeout,
		UtmifyAPIToken:      strings.TrimSpace(os.Getenv("UTMIFY_API_TOKEN")),
		UtmifyBaseURL:       strings.TrimRight(getenvDefault("UTMIFY_BASE_URL", defaultUtmifyBaseURL), "/"),
		UtmifyTimeout:       defaultUtmifyTimeout,
		PublicBaseURL:       strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
		MetricsNamespace:    getenvDefault("METRICS_NAMESPACE", "sabores_pix"),
	}
}

// WebhookCallbackURL is the absolute URL the gateway posts payment-state
// callbacks to. Empty when PUBLIC_BASE_URL is unset, so callers never send
// the gateway a relative postback URL.
func (c Config) WebhookCallbackURL() string {
	if c.PublicBaseURL == "" {
		return ""
	}
	return c.PublicBaseURL + "/api/webhook-for4payments"
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
