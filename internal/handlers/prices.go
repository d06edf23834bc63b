package handlers

import "net/http"

// GoldPrice mirrors the original proxy shape. The fallback substitution has
// already happened inside the price service, so this always answers 200.
func (h *Handler) GoldPrice(w http.ResponseWriter, r *http.Request) {
	quote := h.prices.GoldPrice(r.Context())
	respondJSON(w, http.StatusOK, map[string]float64{"price_gram_24k": quote.Value})
}

func (h *Handler) ExchangeRate(w http.ResponseWriter, r *http.Request) {
	quote := h.prices.ExchangeRate(r.Context())
	respondJSON(w, http.StatusOK, map[string]map[string]float64{
		"rates": {"IDR": quote.Value},
	})
}

// ExchangeContext returns both quotes with their sources plus the composed
// IDR gold price, for the calculator mount.
func (h *Handler) ExchangeContext(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.prices.ExchangeContext(r.Context()))
}
