package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/VeldyVA/ZakatCalculator/internal/extract"
	"github.com/VeldyVA/ZakatCalculator/internal/zakat"
)

type processRequest struct {
	FileContent string `json:"fileContent"`
	ZakatType   string `json:"zakatType"`
}

// ProcessExcel runs the uploaded document text through the preprocessing
// filter and the extraction model. Failures here are fatal to this upload
// only; the calculators keep working on manual input.
func (h *Handler) ProcessExcel(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Missing fileContent or zakatType")
		return
	}
	if req.FileContent == "" || req.ZakatType == "" {
		respondMessage(w, http.StatusBadRequest, "Missing fileContent or zakatType")
		return
	}

	filtered := extract.FilterFinancialText(req.FileContent)
	raw, err := h.extractor.Extract(r.Context(), zakat.Type(req.ZakatType), filtered)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnknownType):
			respondMessage(w, http.StatusBadRequest, "Unknown zakatType")
		case errors.Is(err, extract.ErrInvalidPayload):
			respondMessage(w, http.StatusInternalServerError, "AI returned invalid data")
		default:
			respondMessage(w, http.StatusInternalServerError, "Failed to process file with AI")
		}
		return
	}
	respondRaw(w, http.StatusOK, raw)
}
