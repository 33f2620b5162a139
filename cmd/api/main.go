package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contentshop/internal/client"
	"contentshop/internal/config"
	"contentshop/internal/handler"
	"contentshop/internal/repository"
	"contentshop/internal/server"
	"contentshop/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Auth.Secret == "" {
		fmt.Println("AUTH_SECRET is required")
		os.Exit(1)
	}

	db, err := client.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("database init: ", err)
	}
	mollieClient := client.NewMollieClient(&cfg.Mollie)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	digitalRepo := repository.NewDigitalProductRepository(db)
	deliveryRepo := repository.NewWebhookDeliveryRepository(db)
	newsletterRepo := repository.NewNewsletterRepository(db)

	sessionTTL := time.Duration(cfg.Auth.SessionTTLHrs) * time.Hour
	downloadTTL := time.Duration(cfg.Download.TokenTTLMinutes) * time.Minute

	orderService := service.NewOrderService(db, orderRepo)
	checkoutService := service.NewCheckoutService(orderService, mollieClient, cfg.BaseURL)
	paymentService := service.NewPaymentService(mollieClient, orderService, deliveryRepo)
	downloadService := service.NewDownloadService(orderService, digitalRepo, cfg.Auth.Secret, downloadTTL)
	cartService := service.NewCartService(cartRepo, productRepo)
	userService := service.NewUserService(userRepo, cfg.Auth.Secret, sessionTTL)
	catalogService := service.NewCatalogService(productRepo, digitalRepo)

	handlers := &server.Handlers{
		Auth:       handler.NewAuthHandler(userService, cfg.Auth.SessionCookie, sessionTTL, cfg.Auth.SecureCookies),
		Catalog:    handler.NewCatalogHandler(catalogService),
		Cart:       handler.NewCartHandler(cartService),
		Checkout:   handler.NewCheckoutHandler(checkoutService),
		Payment:    handler.NewPaymentHandler(paymentService),
		Order:      handler.NewOrderHandler(orderService),
		Download:   handler.NewDownloadHandler(downloadService, cfg.BaseURL),
		Newsletter: handler.NewNewsletterHandler(newsletterRepo),
	}

	srv := server.NewServer(handlers, cfg.Auth.Secret, cfg.Auth.SessionCookie)
	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
