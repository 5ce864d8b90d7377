package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"voltpad-checkout/internal/catalog"
	"voltpad-checkout/internal/client"
	"voltpad-checkout/internal/config"
	"voltpad-checkout/internal/logger"
	"voltpad-checkout/internal/server"
	"voltpad-checkout/internal/service"
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

	log := logger.New(cfg.Log)

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		log.Fatal().Err(err).Msg("load catalog")
	}

	stripeClient := client.NewStripeClient(&cfg.Stripe)
	paypalClient := client.NewPaypalClient(&cfg.Paypal, cfg.Environment.IsProduction())

	checkoutService := service.NewCheckoutService(
		stripeClient,
		paypalClient,
		cat,
		cfg.SiteOrigin,
		cfg.Paypal.BrandName,
	)

	srv := server.NewServer(checkoutService, log)
	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Info().
		Str("addr", serverAddr).
		Str("environment", cfg.Environment.Name).
		Msg("starting HTTP server")
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info().Msg("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("HTTP server shutdown error")
	}
}
