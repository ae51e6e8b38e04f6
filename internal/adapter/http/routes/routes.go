package routes

import (
	"log"
	"net/http"

	"sabores_pix/internal/adapter/http/handlers"
	"sabores_pix/internal/infrastructure/analytics"
	"sabores_pix/internal/infrastructure/config"
	"sabores_pix/internal/infrastructure/metrics"
	"sabores_pix/internal/infrastructure/payments"
	"sabores_pix/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run wires all dependencies from the environment-sourced Config and starts
// the server.
func Run() {
	cfg := config.Load()
	metricRegistry := metrics.Registry(cfg.MetricsNamespace)

	setMiddlewares()

	// Operational endpoints.
	router.GET("/healthz", handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, metricRegistry)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config, metricRegistry *metrics.Metrics) {
	gateway := payments.NewGateway(payments.Config{
		BaseURL: cfg.For4PaymentsBaseURL,
		APIKey:  cfg.For4PaymentsAPIKey,
		Timeout: cfg.GatewayTimeout,
	}, metricRegistry)

	notifier := analytics.NewNotifier(analytics.Config{
		BaseURL:  cfg.UtmifyBaseURL,
		APIToken: cfg.UtmifyAPIToken,
		Timeout:  cfg.UtmifyTimeout,
	}, metricRegistry)

	if !gateway.Configured() {
		log.Printf("[routes] FOR4PAYMENTS_API_KEY not set; payment creation will fail with a configuration error")
	}
	if cfg.UtmifyAPIToken == "" {
		log.Printf("[routes] UTMIFY_API_TOKEN not set; analytics events will be skipped")
	}
	if cfg.PublicBaseURL == "" {
		log.Printf("[routes] PUBLIC_BASE_URL not set; purchases carry no postback URL and webhook registration will fail")
	}

	callbackURL := cfg.WebhookCallbackURL()
	paymentUseCase := usecase.NewPixPaymentUseCase(gateway, notifier, callbackURL)
	webhookUseCase := usecase.NewWebhookUseCase(notifier, gateway, callbackURL)
	diagnosticsUseCase := usecase.NewDiagnosticsUseCase(gateway, len(cfg.For4PaymentsAPIKey), cfg.For4PaymentsBaseURL+"/transaction.purchase")

	paymentHandler := handlers.NewPixPaymentHandler(paymentUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase, metricRegistry)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(diagnosticsUseCase)

	api := router.Group("/api")
	addPaymentRoutes(api, paymentHandler, webhookHandler, diagnosticsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(corsMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro interno do servidor",
			"details": recovered,
		})
	}))

	// The checkout UI is served from another origin; anything other than
	// POST/GET/OPTIONS answers 405 instead of 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
}

// corsMiddleware replicates the headers the storefront UI depends on and
// short-circuits cross-origin pre-flight requests with an empty 200.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
