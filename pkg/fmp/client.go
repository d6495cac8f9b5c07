package fmp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"financial-assistant/pkg/log"
)

// Config holds the FMP client configuration.
type Config struct {
	APIKey         string
	BaseURL        string
	Timeout        time.Duration
	CacheEnabled   bool
	CacheTTL       time.Duration
	RequestsPerMin int
}

// Client is the Financial Modeling Prep API client.
type Client struct {
	l          log.Logger
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *expirable.LRU[string, []byte]
	limiter    *rate.Limiter
}

var _ IFMP = (*Client)(nil)

// New creates a new FMP client.
func New(l log.Logger, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("fmp: API key is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{
		l:       l,
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}

	if cfg.CacheEnabled {
		ttl := cfg.CacheTTL
		if ttl <= 0 {
			ttl = 5 * time.Minute
		}
		c.cache = expirable.NewLRU[string, []byte](DefaultCacheSize, nil, ttl)
	}

	if cfg.RequestsPerMin > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMin)/60.0), cfg.RequestsPerMin)
	}

	return c, nil
}

// get performs a GET against an FMP endpoint and returns the raw body.
// Responses are cached per endpoint+params when caching is enabled.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("apikey", c.apiKey)

	reqURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	if c.cache != nil {
		if cached, ok := c.cache.Get(reqURL); ok {
			return cached, nil
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("fmp: rate limit wait: %w", err)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call FMP API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read FMP response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FMP API returned status: %d, body: %s", resp.StatusCode, string(raw))
	}

	if c.cache != nil {
		c.cache.Add(reqURL, raw)
	}

	return raw, nil
}
