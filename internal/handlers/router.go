package handlers

import (
	"net/http"

	"github.com/VeldyVA/ZakatCalculator/internal/config"
	"github.com/VeldyVA/ZakatCalculator/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handler struct {
	cfg          config.Config
	prices       PriceService
	calculations CalculationService
	history      HistoryStore
	extractor    Extractor
	hub          *websocket.Hub
}

func New(cfg config.Config, prices PriceService, calculations CalculationService, history HistoryStore, extractor Extractor, hub *websocket.Hub) *Handler {
	return &Handler{
		cfg:          cfg,
		prices:       prices,
		calculations: calculations,
		history:      history,
		extractor:    extractor,
		hub:          hub,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.AllowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/gold-price", h.GoldPrice)
	router.Get("/exchange-rate", h.ExchangeRate)
	router.Get("/exchange-context", h.ExchangeContext)

	router.Route("/calculations", func(r chi.Router) {
		r.Post("/harta", h.CalculateWealth)
		r.Post("/perusahaan", h.CalculateCompany)
		r.Post("/profesi", h.CalculateIncome)
	})

	router.Get("/history", h.ListHistory)
	router.Delete("/history", h.ClearHistory)
	router.Delete("/history/{id}", h.RemoveHistory)

	router.Post("/process-excel", h.ProcessExcel)

	router.Get("/ws/prices", h.WSPrices)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return router
}

func (h *Handler) WSPrices(w http.ResponseWriter, r *http.Request) {
	websocket.ServeWS(w, r, h.hub)
}
