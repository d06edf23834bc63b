package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/VeldyVA/ZakatCalculator/internal/services"

	"github.com/shopspring/decimal"
)

// Payload numbers are plain JSON numbers; absent fields decode to zero, so
// totals are always well defined. Dates use YYYY-MM-DD and may be empty.
type wealthPayload struct {
	Cash                float64 `json:"cash"`
	GoldSilverValue     float64 `json:"goldSilverValue"`
	StocksValue         float64 `json:"stocksValue"`
	RentalPropertyValue float64 `json:"rentalPropertyValue"`
	Debt                float64 `json:"debt"`
	StartDate           string  `json:"startDate"`
	CalculationDate     string  `json:"calculationDate"`
}

type companyPayload struct {
	Cash               float64 `json:"cash"`
	Inventory          float64 `json:"inventory"`
	Receivables        float64 `json:"receivables"`
	CurrentLiabilities float64 `json:"currentLiabilities"`
	StartDate          string  `json:"startDate"`
	CalculationDate    string  `json:"calculationDate"`
}

type incomePayload struct {
	MonthlyIncome float64 `json:"monthlyIncome"`
	PaydayDate    string  `json:"paydayDate"`
}

type calculationResponse struct {
	TotalAssets         decimal.Decimal `json:"total_assets"`
	EligibleBase        decimal.Decimal `json:"eligible_base"`
	Nisab               decimal.Decimal `json:"nisab"`
	DaysPassed          int             `json:"days_passed"`
	HaulReached         bool            `json:"haul_reached"`
	ZakatDue            decimal.Decimal `json:"zakat_due"`
	Currency            string          `json:"currency"`
	GoldPriceIDRPerGram float64         `json:"gold_price_idr_per_gram,omitempty"`
	HistoryID           string          `json:"history_id"`
}

func (h *Handler) CalculateWealth(w http.ResponseWriter, r *http.Request) {
	var payload wealthPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	startDate, err := parseDate(payload.StartDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid startDate")
		return
	}
	calculationDate, err := parseDate(payload.CalculationDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid calculationDate")
		return
	}

	outcome, err := h.calculations.CalculateWealth(r.Context(), services.WealthRequest{
		Cash:            decimal.NewFromFloat(payload.Cash),
		GoldSilver:      decimal.NewFromFloat(payload.GoldSilverValue),
		Stocks:          decimal.NewFromFloat(payload.StocksValue),
		RentalProperty:  decimal.NewFromFloat(payload.RentalPropertyValue),
		Debt:            decimal.NewFromFloat(payload.Debt),
		StartDate:       startDate,
		CalculationDate: calculationDate,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to record calculation")
		return
	}
	respondJSON(w, http.StatusOK, toResponse(outcome, true))
}

func (h *Handler) CalculateCompany(w http.ResponseWriter, r *http.Request) {
	var payload companyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	startDate, err := parseDate(payload.StartDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid startDate")
		return
	}
	calculationDate, err := parseDate(payload.CalculationDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid calculationDate")
		return
	}

	outcome, err := h.calculations.CalculateCompany(r.Context(), services.CompanyRequest{
		Cash:               decimal.NewFromFloat(payload.Cash),
		Inventory:          decimal.NewFromFloat(payload.Inventory),
		Receivables:        decimal.NewFromFloat(payload.Receivables),
		CurrentLiabilities: decimal.NewFromFloat(payload.CurrentLiabilities),
		StartDate:          startDate,
		CalculationDate:    calculationDate,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to record calculation")
		return
	}
	respondJSON(w, http.StatusOK, toResponse(outcome, true))
}

func (h *Handler) CalculateIncome(w http.ResponseWriter, r *http.Request) {
	var payload incomePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	payday, err := parseDate(payload.PaydayDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid paydayDate")
		return
	}

	outcome, err := h.calculations.CalculateIncome(r.Context(), services.IncomeRequest{
		MonthlyIncome: decimal.NewFromFloat(payload.MonthlyIncome),
		Payday:        payday,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to record calculation")
		return
	}
	respondJSON(w, http.StatusOK, toResponse(outcome, false))
}

func toResponse(outcome services.Outcome, withGoldPrice bool) calculationResponse {
	response := calculationResponse{
		TotalAssets:  outcome.Result.TotalAssets,
		EligibleBase: outcome.Result.EligibleBase,
		Nisab:        outcome.Result.Nisab,
		DaysPassed:   outcome.Result.DaysPassed,
		HaulReached:  outcome.Result.HaulReached,
		ZakatDue:     outcome.Result.ZakatDue,
		Currency:     services.Currency,
		HistoryID:    outcome.HistoryID,
	}
	if withGoldPrice {
		response.GoldPriceIDRPerGram = outcome.Context.GoldPriceIDRPerGram
	}
	return response
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", value)
}
