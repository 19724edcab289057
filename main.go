package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/fomosandwich/sandwich-cart/config"
	"github.com/fomosandwich/sandwich-cart/router"
	"github.com/fomosandwich/sandwich-cart/services"
	"github.com/fomosandwich/sandwich-cart/store"
	"github.com/fomosandwich/sandwich-cart/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := config.OpenStore(context.Background(), cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open order store (%s): %v", cfg.StoreDriver, err)
	}
	store.Init(st)
	if !store.IsConfigured() {
		utils.ErrorLogger.Fatal("Order store is not configured")
	}
	utils.InfoLogger.Printf("Order store ready (driver=%s)", cfg.StoreDriver)

	orderService := services.NewOrderService(store.Get())

	r := router.SetupRouter(orderService)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
