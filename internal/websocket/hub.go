package websocket

import (
	"encoding/json"
	"sync"
)

// PriceUpdate is pushed to every connected client each time the pricing
// service composes a fresh exchange context.
type PriceUpdate struct {
	GoldPriceUSDPerGram float64 `json:"gold_price_usd_per_gram"`
	GoldSource          string  `json:"gold_source"`
	ExchangeRateUSDIDR  float64 `json:"exchange_rate_usd_idr"`
	RateSource          string  `json:"rate_source"`
	GoldPriceIDRPerGram float64 `json:"gold_price_idr_per_gram"`
}

type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// BroadcastPrices fans the update out to every client. Slow clients are
// skipped rather than blocked on.
func (h *Hub) BroadcastPrices(update PriceUpdate) {
	payload, _ := json.Marshal(update)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
		}
	}
}
