package handlers

import (
	"context"
	"encoding/json"

	"github.com/VeldyVA/ZakatCalculator/internal/pricing"
	"github.com/VeldyVA/ZakatCalculator/internal/services"
	"github.com/VeldyVA/ZakatCalculator/internal/store"
	"github.com/VeldyVA/ZakatCalculator/internal/zakat"
)

type PriceService interface {
	GoldPrice(ctx context.Context) pricing.PriceQuote
	ExchangeRate(ctx context.Context) pricing.PriceQuote
	ExchangeContext(ctx context.Context) pricing.Context
}

type CalculationService interface {
	CalculateWealth(ctx context.Context, req services.WealthRequest) (services.Outcome, error)
	CalculateCompany(ctx context.Context, req services.CompanyRequest) (services.Outcome, error)
	CalculateIncome(ctx context.Context, req services.IncomeRequest) (services.Outcome, error)
}

type HistoryStore interface {
	List(ctx context.Context) ([]store.HistoryEntry, error)
	Remove(ctx context.Context, id string) (int64, error)
	Clear(ctx context.Context) error
}

type Extractor interface {
	Extract(ctx context.Context, zakatType zakat.Type, content string) (json.RawMessage, error)
}
