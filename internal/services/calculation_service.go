// Package services orchestrates a calculation submission: acquire prices,
// run the eligibility rules, record the outcome in the history ledger.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/VeldyVA/ZakatCalculator/internal/pricing"
	"github.com/VeldyVA/ZakatCalculator/internal/store"
	"github.com/VeldyVA/ZakatCalculator/internal/zakat"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const Currency = "IDR"

type PriceService interface {
	ExchangeContext(ctx context.Context) pricing.Context
}

type HistoryStore interface {
	Append(ctx context.Context, input store.HistoryEntryInput) error
}

type CalculationService struct {
	prices  PriceService
	history HistoryStore
	now     func() time.Time
}

func NewCalculationService(prices PriceService, history HistoryStore) *CalculationService {
	return &CalculationService{
		prices:  prices,
		history: history,
		now:     time.Now,
	}
}

type WealthRequest struct {
	Cash            decimal.Decimal `json:"cash"`
	GoldSilver      decimal.Decimal `json:"goldSilverValue"`
	Stocks          decimal.Decimal `json:"stocksValue"`
	RentalProperty  decimal.Decimal `json:"rentalPropertyValue"`
	Debt            decimal.Decimal `json:"debt"`
	StartDate       time.Time       `json:"-"`
	CalculationDate time.Time       `json:"-"`
}

type CompanyRequest struct {
	Cash               decimal.Decimal `json:"cash"`
	Inventory          decimal.Decimal `json:"inventory"`
	Receivables        decimal.Decimal `json:"receivables"`
	CurrentLiabilities decimal.Decimal `json:"currentLiabilities"`
	StartDate          time.Time       `json:"-"`
	CalculationDate    time.Time       `json:"-"`
}

type IncomeRequest struct {
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`
	Payday        time.Time       `json:"-"`
}

// Outcome is one completed calculation together with the pricing context it
// used and the id of the history entry it produced.
type Outcome struct {
	Result    zakat.Result
	Context   pricing.Context
	HistoryID string
}

// CalculateWealth runs the harta rules against a fresh exchange context and
// appends the submission to history, zero results included.
func (s *CalculationService) CalculateWealth(ctx context.Context, req WealthRequest) (Outcome, error) {
	composed := s.prices.ExchangeContext(ctx)
	result := zakat.CalculateWealth(zakat.WealthInput{
		Cash:            req.Cash,
		GoldSilver:      req.GoldSilver,
		Stocks:          req.Stocks,
		RentalProperty:  req.RentalProperty,
		Debt:            req.Debt,
		StartDate:       req.StartDate,
		CalculationDate: req.CalculationDate,
	}, decimal.NewFromFloat(composed.GoldPriceIDRPerGram))

	snapshot := wealthSnapshot{
		WealthRequest:   req,
		StartDate:       formatDate(req.StartDate),
		CalculationDate: formatDate(req.CalculationDate),
	}
	id, err := s.record(ctx, zakat.TypeHarta, snapshot, result)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Result: result, Context: composed, HistoryID: id}, nil
}

// CalculateCompany runs the perusahaan rules the same way.
func (s *CalculationService) CalculateCompany(ctx context.Context, req CompanyRequest) (Outcome, error) {
	composed := s.prices.ExchangeContext(ctx)
	result := zakat.CalculateCompany(zakat.CompanyInput{
		Cash:               req.Cash,
		Inventory:          req.Inventory,
		Receivables:        req.Receivables,
		CurrentLiabilities: req.CurrentLiabilities,
		StartDate:          req.StartDate,
		CalculationDate:    req.CalculationDate,
	}, decimal.NewFromFloat(composed.GoldPriceIDRPerGram))

	snapshot := companySnapshot{
		CompanyRequest:  req,
		StartDate:       formatDate(req.StartDate),
		CalculationDate: formatDate(req.CalculationDate),
	}
	id, err := s.record(ctx, zakat.TypePerusahaan, snapshot, result)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Result: result, Context: composed, HistoryID: id}, nil
}

// CalculateIncome runs the profesi rules. No price fetch happens: the rice
// nisab is a constant.
func (s *CalculationService) CalculateIncome(ctx context.Context, req IncomeRequest) (Outcome, error) {
	result := zakat.CalculateIncome(zakat.IncomeInput{
		MonthlyIncome: req.MonthlyIncome,
		Payday:        req.Payday,
	})

	snapshot := incomeSnapshot{
		IncomeRequest: req,
		Payday:        formatDate(req.Payday),
	}
	id, err := s.record(ctx, zakat.TypeProfesi, snapshot, result)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Result: result, HistoryID: id}, nil
}

func (s *CalculationService) record(ctx context.Context, zakatType zakat.Type, snapshot any, result zakat.Result) (string, error) {
	encoded, err := json.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	now := s.now().UTC()
	id := historyID(now)
	err = s.history.Append(ctx, store.HistoryEntryInput{
		ID:        id,
		ZakatType: string(zakatType),
		CreatedAt: now.Format(time.RFC3339),
		Input:     string(encoded),
		Result:    result.ZakatDue.String(),
		Currency:  Currency,
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// History ids are time-derived with a short random suffix so two submissions
// in the same millisecond stay distinct.
func historyID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format("2006-01-02")
}

type wealthSnapshot struct {
	WealthRequest
	StartDate       string `json:"startDate"`
	CalculationDate string `json:"calculationDate"`
}

type companySnapshot struct {
	CompanyRequest
	StartDate       string `json:"startDate"`
	CalculationDate string `json:"calculationDate"`
}

type incomeSnapshot struct {
	IncomeRequest
	Payday string `json:"paydayDate"`
}
