package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv         string
	Port           string
	DBPath         string
	AllowedOrigins string

	GoldAPIURL     string
	GoldAPIKey     string
	ExchangeAPIURL string
	ExchangeAppID  string

	GroqAPIURL string
	GroqAPIKey string
	GroqModel  string

	// Static fallbacks used whenever a provider call fails.
	FallbackGoldPriceIDR float64
	FallbackExchangeRate float64

	FetchTimeout time.Duration
}

func Load() Config {
	return Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		DBPath:         getEnv("DB_PATH", "zakat.db"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),

		GoldAPIURL:     getEnv("GOLD_API_URL", "https://www.goldapi.io/api/XAU/USD"),
		GoldAPIKey:     getEnv("GOLD_API_KEY", ""),
		ExchangeAPIURL: getEnv("EXCHANGE_API_URL", "https://openexchangerates.org/api/latest.json"),
		ExchangeAppID:  getEnv("EXCHANGE_APP_ID", ""),

		GroqAPIURL: getEnv("GROQ_API_URL", "https://api.groq.com/openai/v1/chat/completions"),
		GroqAPIKey: getEnv("GROQ_API_KEY", ""),
		GroqModel:  getEnv("GROQ_MODEL", "llama3-8b-8192"),

		FallbackGoldPriceIDR: getFloat("FALLBACK_GOLD_PRICE_IDR", 1750000),
		FallbackExchangeRate: getFloat("FALLBACK_EXCHANGE_RATE", 16000),

		FetchTimeout: getSeconds("FETCH_TIMEOUT_SECONDS", 8),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getSeconds(key string, fallbackSeconds int) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(fallbackSeconds) * time.Second
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return time.Duration(fallbackSeconds) * time.Second
	}
	return time.Duration(parsed) * time.Second
}
