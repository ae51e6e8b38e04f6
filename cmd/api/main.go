package main

import (
	"sabores_pix/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Sabores de Minas PIX API
// @version         1.0
// @description     Promotional storefront payment API: creates PIX payment intents via For4Payments and forwards order events to Utmify.

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
