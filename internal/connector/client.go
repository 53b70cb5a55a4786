// Package connector wraps the external market-data APIs used for demo
// metrics: Binance futures tickers, Etherscan on-chain stats, and GitHub
// commit activity. Calls are thin GET wrappers with caching and per-host rate
// limiting but no retries.
package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/narrativelab/macrograph/internal/cache"
	"github.com/narrativelab/macrograph/internal/model"
	"github.com/narrativelab/macrograph/internal/util"
	"github.com/narrativelab/macrograph/internal/worker"
)

// Client is the shared HTTP layer under every connector.
type Client struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	cache      cache.Cache // nil disables caching
	cacheTTL   time.Duration
	limiter    *worker.Limiter
}

// NewClient builds a connector client from configuration.
func NewClient(cfg *model.Config) *Client {
	var c cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			c = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			c = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
		}
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		cache:     c,
		cacheTTL:  cfg.Cache.TTL,
		limiter:   worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
	}
}

// get performs a rate-limited GET and returns status and body. Cached
// responses skip the network entirely (only 2xx bodies are cached).
func (c *Client) get(ctx context.Context, rawURL string, headers map[string]string) (int, []byte, error) {
	key := cache.Key(rawURL)
	if c.cache != nil {
		if body, found := c.cache.Get(key); found {
			return http.StatusOK, body, nil
		}
	}

	if err := c.limiter.Wait(ctx, rawURL); err != nil {
		return 0, nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read body: %w", err)
	}

	if c.cache != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_ = c.cache.Set(key, body, c.cacheTTL)
	}
	return resp.StatusCode, body, nil
}

// getJSON performs a GET and decodes the JSON response, failing on non-2xx
// statuses.
func (c *Client) getJSON(ctx context.Context, rawURL string, headers map[string]string) (any, error) {
	status, body, err := c.get(ctx, rawURL, headers)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("unexpected status: %d", status)
	}
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload, nil
}
