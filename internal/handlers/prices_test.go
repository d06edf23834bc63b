package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VeldyVA/ZakatCalculator/internal/pricing"
)

func TestGoldPriceEndpointShape(t *testing.T) {
	handler := newTestHandler(stubPriceService{
		gold: pricing.PriceQuote{Value: 109.375, Source: pricing.SourceFallback},
	}, nil, nil, nil)

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/gold-price", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("fallback quotes must still answer 200, got %d", recorder.Code)
	}
	var body map[string]float64
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["price_gram_24k"] != 109.375 {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestExchangeRateEndpointShape(t *testing.T) {
	handler := newTestHandler(stubPriceService{
		rate: pricing.PriceQuote{Value: 16450, Source: pricing.SourceLive},
	}, nil, nil, nil)

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/exchange-rate", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var body struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Rates["IDR"] != 16450 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestExchangeContextEndpoint(t *testing.T) {
	handler := newTestHandler(stubPriceService{
		context: pricing.Context{
			GoldPriceUSDPerGram: pricing.PriceQuote{Value: 110, Source: pricing.SourceLive},
			ExchangeRateUSDIDR:  pricing.PriceQuote{Value: 16000, Source: pricing.SourceFallback},
			GoldPriceIDRPerGram: 1760000,
		},
	}, nil, nil, nil)

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/exchange-context", nil))

	var body pricing.Context
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.GoldPriceIDRPerGram != 1760000 {
		t.Fatalf("unexpected context: %+v", body)
	}
	if body.ExchangeRateUSDIDR.Source != pricing.SourceFallback {
		t.Fatalf("sources must be surfaced: %+v", body)
	}
}
