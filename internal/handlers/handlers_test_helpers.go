package handlers

import (
	"context"
	"encoding/json"

	"github.com/VeldyVA/ZakatCalculator/internal/config"
	"github.com/VeldyVA/ZakatCalculator/internal/pricing"
	"github.com/VeldyVA/ZakatCalculator/internal/services"
	"github.com/VeldyVA/ZakatCalculator/internal/store"
	"github.com/VeldyVA/ZakatCalculator/internal/websocket"
	"github.com/VeldyVA/ZakatCalculator/internal/zakat"
)

type stubPriceService struct {
	gold    pricing.PriceQuote
	rate    pricing.PriceQuote
	context pricing.Context
}

func (s stubPriceService) GoldPrice(ctx context.Context) pricing.PriceQuote {
	return s.gold
}

func (s stubPriceService) ExchangeRate(ctx context.Context) pricing.PriceQuote {
	return s.rate
}

func (s stubPriceService) ExchangeContext(ctx context.Context) pricing.Context {
	return s.context
}

type stubCalculationService struct {
	wealthFn  func(ctx context.Context, req services.WealthRequest) (services.Outcome, error)
	companyFn func(ctx context.Context, req services.CompanyRequest) (services.Outcome, error)
	incomeFn  func(ctx context.Context, req services.IncomeRequest) (services.Outcome, error)
}

func (s stubCalculationService) CalculateWealth(ctx context.Context, req services.WealthRequest) (services.Outcome, error) {
	return s.wealthFn(ctx, req)
}

func (s stubCalculationService) CalculateCompany(ctx context.Context, req services.CompanyRequest) (services.Outcome, error) {
	return s.companyFn(ctx, req)
}

func (s stubCalculationService) CalculateIncome(ctx context.Context, req services.IncomeRequest) (services.Outcome, error) {
	return s.incomeFn(ctx, req)
}

type stubHistoryStore struct {
	listFn   func(ctx context.Context) ([]store.HistoryEntry, error)
	removeFn func(ctx context.Context, id string) (int64, error)
	clearFn  func(ctx context.Context) error
}

func (s stubHistoryStore) List(ctx context.Context) ([]store.HistoryEntry, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s stubHistoryStore) Remove(ctx context.Context, id string) (int64, error) {
	if s.removeFn == nil {
		return 1, nil
	}
	return s.removeFn(ctx, id)
}

func (s stubHistoryStore) Clear(ctx context.Context) error {
	if s.clearFn == nil {
		return nil
	}
	return s.clearFn(ctx)
}

type stubExtractor struct {
	extractFn func(ctx context.Context, zakatType zakat.Type, content string) (json.RawMessage, error)
}

func (s stubExtractor) Extract(ctx context.Context, zakatType zakat.Type, content string) (json.RawMessage, error) {
	return s.extractFn(ctx, zakatType, content)
}

func newTestHandler(prices PriceService, calculations CalculationService, history HistoryStore, extractor Extractor) *Handler {
	cfg := config.Config{AllowedOrigins: "*"}
	return New(cfg, prices, calculations, history, extractor, websocket.NewHub())
}
