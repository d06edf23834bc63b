package pricing

import (
	"context"
	"log"

	"github.com/VeldyVA/ZakatCalculator/internal/websocket"
)

// Fetcher is one provider call. An error return means the caller substitutes
// the static fallback; no retries happen anywhere.
type Fetcher interface {
	Fetch(ctx context.Context) (float64, error)
}

type PriceHub interface {
	BroadcastPrices(update websocket.PriceUpdate)
}

// Service composes the gold and rate quotes. From the caller's perspective it
// never fails: any provider error is absorbed into a fallback quote.
type Service struct {
	gold Fetcher
	rate Fetcher

	fallbackGoldIDR float64
	fallbackRate    float64

	hub PriceHub
}

func NewService(gold, rate Fetcher, fallbackGoldIDR, fallbackRate float64, hub PriceHub) *Service {
	return &Service{
		gold:            gold,
		rate:            rate,
		fallbackGoldIDR: fallbackGoldIDR,
		fallbackRate:    fallbackRate,
		hub:             hub,
	}
}

// GoldPrice returns the USD per gram quote. The fallback is the static IDR
// gold price converted through the static rate, matching the nisab the
// calculator would show with no live data at all.
func (s *Service) GoldPrice(ctx context.Context) PriceQuote {
	value, err := s.gold.Fetch(ctx)
	if err != nil {
		log.Printf("warn: gold price fetch failed, using static fallback: %v", err)
		return PriceQuote{Value: s.fallbackGoldIDR / s.fallbackRate, Source: SourceFallback}
	}
	return PriceQuote{Value: value, Source: SourceLive}
}

// ExchangeRate returns the USD to IDR quote.
func (s *Service) ExchangeRate(ctx context.Context) PriceQuote {
	value, err := s.rate.Fetch(ctx)
	if err != nil {
		log.Printf("warn: exchange rate fetch failed, using static fallback: %v", err)
		return PriceQuote{Value: s.fallbackRate, Source: SourceFallback}
	}
	return PriceQuote{Value: value, Source: SourceLive}
}

// ExchangeContext acquires both quotes sequentially and composes the IDR
// gold price. Both quotes are positive by construction, so the composition
// itself cannot fail.
func (s *Service) ExchangeContext(ctx context.Context) Context {
	gold := s.GoldPrice(ctx)
	rate := s.ExchangeRate(ctx)
	composed := Context{
		GoldPriceUSDPerGram: gold,
		ExchangeRateUSDIDR:  rate,
		GoldPriceIDRPerGram: gold.Value * rate.Value,
	}
	if s.hub != nil {
		s.hub.BroadcastPrices(websocket.PriceUpdate{
			GoldPriceUSDPerGram: gold.Value,
			GoldSource:          gold.Source,
			ExchangeRateUSDIDR:  rate.Value,
			RateSource:          rate.Source,
			GoldPriceIDRPerGram: composed.GoldPriceIDRPerGram,
		})
	}
	return composed
}
