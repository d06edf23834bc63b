package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VeldyVA/ZakatCalculator/internal/config"
	"github.com/VeldyVA/ZakatCalculator/internal/db"
	"github.com/VeldyVA/ZakatCalculator/internal/extract"
	"github.com/VeldyVA/ZakatCalculator/internal/handlers"
	"github.com/VeldyVA/ZakatCalculator/internal/pricing"
	"github.com/VeldyVA/ZakatCalculator/internal/services"
	"github.com/VeldyVA/ZakatCalculator/internal/store"
	"github.com/VeldyVA/ZakatCalculator/internal/websocket"
)

func main() {
	cfg := config.Load()
	database, err := db.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	hub := websocket.NewHub()
	gold := pricing.NewGoldClient(cfg.GoldAPIURL, cfg.GoldAPIKey, cfg.FetchTimeout)
	rate := pricing.NewRateClient(cfg.ExchangeAPIURL, cfg.ExchangeAppID, cfg.FetchTimeout)
	prices := pricing.NewService(gold, rate, cfg.FallbackGoldPriceIDR, cfg.FallbackExchangeRate, hub)

	history := store.NewHistoryStore(database)
	calculations := services.NewCalculationService(prices, history)
	extractor := extract.NewGroqClient(cfg.GroqAPIURL, cfg.GroqAPIKey, cfg.GroqModel, cfg.FetchTimeout)

	handler := handlers.New(cfg, prices, calculations, history, extractor, hub)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("zakat API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
