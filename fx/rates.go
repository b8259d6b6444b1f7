// Package fx fetches the JPY->LKR exchange rate used to seed rate fields on
// the cost and sale forms. The rate is only ever a suggestion; every form
// keeps it user-editable.
package fx

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"go-postgres-carbooks/logger"
)

// FallbackJPYLKR is used whenever the external endpoint fails or times out.
const FallbackJPYLKR = 1.9775

// DefaultURL serves open-er-api style JSON: {"rates": {"LKR": 1.97}}.
const DefaultURL = "https://open.er-api.com/v6/latest/JPY"

const fetchTimeout = 5 * time.Second

type Client struct {
	url  string
	http *http.Client
}

// NewClient builds a client against EXCHANGE_RATE_URL (or the default
// endpoint) with the 5s fetch timeout.
func NewClient() *Client {
	url := os.Getenv("EXCHANGE_RATE_URL")
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:  url,
		http: &http.Client{Timeout: fetchTimeout},
	}
}

// NewClientFor is NewClient with an explicit endpoint, used by tests.
func NewClientFor(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: fetchTimeout},
	}
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// JPYToLKR returns the current JPY->LKR rate and whether the fallback was
// used. It never returns an error: any failure mode degrades to the fallback
// constant.
func (c *Client) JPYToLKR(ctx context.Context) (float64, bool) {
	log := logger.WithComponent("fx")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return FallbackJPYLKR, true
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("exchange rate fetch failed, using fallback")
		return FallbackJPYLKR, true
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Msg("exchange rate endpoint error, using fallback")
		return FallbackJPYLKR, true
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Warn().Err(err).Msg("exchange rate response unreadable, using fallback")
		return FallbackJPYLKR, true
	}

	rate, ok := body.Rates["LKR"]
	if !ok || rate <= 0 {
		return FallbackJPYLKR, true
	}
	return rate, false
}

// setTimeout shortens the HTTP client timeout, for tests only.
func (c *Client) setTimeout(d time.Duration) {
	c.http.Timeout = d
}
