package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.history.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load history")
		return
	}
	response := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		// Input is stored as serialized JSON; hand it back as an object.
		response = append(response, map[string]any{
			"id":        entry.ID,
			"type":      entry.ZakatType,
			"timestamp": entry.CreatedAt,
			"input":     json.RawMessage(entry.Input),
			"result":    entry.Result,
			"currency":  entry.Currency,
		})
	}
	respondJSON(w, http.StatusOK, response)
}

func (h *Handler) RemoveHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rows, err := h.history.Remove(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to delete entry")
		return
	}
	if rows == 0 {
		respondError(w, http.StatusNotFound, "entry not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.history.Clear(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to clear history")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
