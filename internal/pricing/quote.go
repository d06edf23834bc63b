// Package pricing acquires the external gold price and exchange rate and
// composes them into an IDR-denominated gold price. Provider failures never
// escape this package: every failed fetch is substituted by the configured
// static fallback at the boundary.
package pricing

const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// PriceQuote is one acquired value. Value is always positive: a non-positive
// or malformed provider response is replaced by the fallback before the quote
// is built.
type PriceQuote struct {
	Value  float64 `json:"value"`
	Source string  `json:"source"`
}

// Context is the composed pricing state for one calculator session.
type Context struct {
	GoldPriceUSDPerGram PriceQuote `json:"gold_price_usd_per_gram"`
	ExchangeRateUSDIDR  PriceQuote `json:"exchange_rate_usd_idr"`
	GoldPriceIDRPerGram float64    `json:"gold_price_idr_per_gram"`
}
