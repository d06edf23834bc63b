package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/VeldyVA/ZakatCalculator/internal/pricing"
	"github.com/VeldyVA/ZakatCalculator/internal/services"
	"github.com/VeldyVA/ZakatCalculator/internal/zakat"

	"github.com/shopspring/decimal"
)

func TestCalculateWealthEndpoint(t *testing.T) {
	var captured services.WealthRequest
	calculations := stubCalculationService{
		wealthFn: func(ctx context.Context, req services.WealthRequest) (services.Outcome, error) {
			captured = req
			return services.Outcome{
				Result: zakat.Result{
					TotalAssets:  decimal.NewFromInt(10000000),
					EligibleBase: decimal.NewFromInt(10000000),
					Nisab:        decimal.NewFromInt(148750000),
					DaysPassed:   366,
					HaulReached:  true,
					ZakatDue:     decimal.Zero,
				},
				Context:   pricing.Context{GoldPriceIDRPerGram: 1750000},
				HistoryID: "1756339200000-ab12cd34",
			}, nil
		},
	}
	handler := newTestHandler(stubPriceService{}, calculations, nil, nil)

	body := `{"cash":10000000,"startDate":"2025-01-01","calculationDate":"2026-01-02"}`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/calculations/harta", strings.NewReader(body))
	handler.Routes().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if !captured.Cash.Equal(decimal.NewFromInt(10000000)) {
		t.Fatalf("unexpected cash: %s", captured.Cash)
	}
	if captured.StartDate.Format("2006-01-02") != "2025-01-01" {
		t.Fatalf("unexpected start date: %v", captured.StartDate)
	}
	// Absent fields coerce to zero.
	if !captured.Debt.IsZero() || !captured.Stocks.IsZero() {
		t.Fatalf("absent fields must decode to zero")
	}

	var response map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if response["zakat_due"] != "0" {
		t.Fatalf("unexpected zakat_due: %v", response["zakat_due"])
	}
	if response["nisab"] != "148750000" {
		t.Fatalf("unexpected nisab: %v", response["nisab"])
	}
	if response["history_id"] != "1756339200000-ab12cd34" {
		t.Fatalf("unexpected history id: %v", response["history_id"])
	}
	if response["gold_price_idr_per_gram"] != float64(1750000) {
		t.Fatalf("unexpected gold price: %v", response["gold_price_idr_per_gram"])
	}
}

func TestCalculateWealthEndpointInvalidDate(t *testing.T) {
	handler := newTestHandler(stubPriceService{}, stubCalculationService{}, nil, nil)

	body := `{"cash":1,"startDate":"01/01/2025"}`
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/calculations/harta", strings.NewReader(body)))

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestCalculateWealthEndpointInvalidBody(t *testing.T) {
	handler := newTestHandler(stubPriceService{}, stubCalculationService{}, nil, nil)

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/calculations/harta", strings.NewReader("not json")))

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestCalculateCompanyEndpoint(t *testing.T) {
	calculations := stubCalculationService{
		companyFn: func(ctx context.Context, req services.CompanyRequest) (services.Outcome, error) {
			if !req.Inventory.Equal(decimal.NewFromInt(40000000)) {
				t.Fatalf("unexpected inventory: %s", req.Inventory)
			}
			return services.Outcome{
				Result: zakat.Result{
					TotalAssets:  decimal.NewFromInt(110000000),
					EligibleBase: decimal.NewFromInt(90000000),
					Nisab:        decimal.NewFromInt(85000000),
					HaulReached:  true,
					ZakatDue:     decimal.NewFromInt(2250000),
				},
				HistoryID: "id-1",
			}, nil
		},
	}
	handler := newTestHandler(stubPriceService{}, calculations, nil, nil)

	body := `{"cash":60000000,"inventory":40000000,"receivables":10000000,"currentLiabilities":20000000,"startDate":"2025-01-01","calculationDate":"2026-01-01"}`
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/calculations/perusahaan", strings.NewReader(body)))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var response map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if response["zakat_due"] != "2250000" {
		t.Fatalf("unexpected zakat_due: %v", response["zakat_due"])
	}
}

func TestCalculateIncomeEndpoint(t *testing.T) {
	calculations := stubCalculationService{
		incomeFn: func(ctx context.Context, req services.IncomeRequest) (services.Outcome, error) {
			if !req.MonthlyIncome.Equal(decimal.NewFromInt(10000000)) {
				t.Fatalf("unexpected income: %s", req.MonthlyIncome)
			}
			return services.Outcome{
				Result: zakat.Result{
					TotalAssets:  decimal.NewFromInt(10000000),
					EligibleBase: decimal.NewFromInt(10000000),
					Nisab:        decimal.NewFromInt(6760000),
					ZakatDue:     decimal.NewFromInt(250000),
				},
				HistoryID: "id-2",
			}, nil
		},
	}
	handler := newTestHandler(stubPriceService{}, calculations, nil, nil)

	body := `{"monthlyIncome":10000000,"paydayDate":"2026-08-25"}`
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/calculations/profesi", strings.NewReader(body)))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var response map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if response["zakat_due"] != "250000" {
		t.Fatalf("unexpected zakat_due: %v", response["zakat_due"])
	}
	if _, ok := response["gold_price_idr_per_gram"]; ok {
		t.Fatalf("income mode must not expose a gold price")
	}
}
