package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var ErrInvalidPrice = errors.New("provider returned missing or non-positive price")

// GoldClient fetches the 24k gold price per gram in USD from GoldAPI.io.
type GoldClient struct {
	url    string
	apiKey string
	cli    *http.Client
}

func NewGoldClient(apiURL, apiKey string, timeout time.Duration) *GoldClient {
	return &GoldClient{
		url:    apiURL,
		apiKey: apiKey,
		cli:    &http.Client{Timeout: timeout},
	}
}

func (c *GoldClient) Fetch(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("x-access-token", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.cli.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("goldapi http %d", resp.StatusCode)
	}

	var body struct {
		PriceGram24K *float64 `json:"price_gram_24k"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	if body.PriceGram24K == nil || *body.PriceGram24K <= 0 {
		return 0, ErrInvalidPrice
	}
	return *body.PriceGram24K, nil
}

// RateClient fetches the USD to IDR rate from Open Exchange Rates.
type RateClient struct {
	url   string
	appID string
	cli   *http.Client
}

func NewRateClient(apiURL, appID string, timeout time.Duration) *RateClient {
	return &RateClient{
		url:   apiURL,
		appID: appID,
		cli:   &http.Client{Timeout: timeout},
	}
}

func (c *RateClient) Fetch(ctx context.Context) (float64, error) {
	query := url.Values{}
	query.Set("app_id", c.appID)
	query.Set("base", "USD")
	query.Set("symbols", "IDR")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"?"+query.Encode(), nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.cli.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("openexchangerates http %d", resp.StatusCode)
	}

	var body struct {
		Rates struct {
			IDR *float64 `json:"IDR"`
		} `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	if body.Rates.IDR == nil || *body.Rates.IDR <= 0 {
		return 0, ErrInvalidPrice
	}
	return *body.Rates.IDR, nil
}
