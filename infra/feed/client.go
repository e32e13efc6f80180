package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fxmirror/fxmirror/infra/metrics"
	"github.com/fxmirror/fxmirror/pkg/cache"
	"github.com/fxmirror/fxmirror/pkg/config"
	"github.com/fxmirror/fxmirror/pkg/domain"
)

const (
	currenciesEndpoint = "/currencies.json"

	listCacheKey    = "currencies"
	rateCachePrefix = "rates:"

	listCacheName = "currency_list"
	rateCacheName = "rate_table"
)

// Client resolves currency lists and per-base rate tables from a public
// exchange rate feed. A failed primary request is retried once against a
// mirror host, and successful responses are cached for a fixed window to
// bound request volume. Caches are owned by the instance; nothing is shared
// through package state.
type Client struct {
	primaryURL  string
	fallbackURL string
	httpClient  *http.Client
	ttl         time.Duration
	lists       cache.Cache[domain.CurrencyList]
	rates       cache.Cache[domain.RateTable]
	logger      *slog.Logger
	metrics     *metrics.FeedMetrics
}

// New creates a feed client. metrics may be nil when no registry is wired,
// e.g. in tests.
func New(
	cfg config.Feed,
	lists cache.Cache[domain.CurrencyList],
	rates cache.Cache[domain.RateTable],
	logger *slog.Logger,
	m *metrics.FeedMetrics,
) *Client {
	return &Client{
		primaryURL:  strings.TrimRight(cfg.PrimaryURL, "/"),
		fallbackURL: strings.TrimRight(cfg.FallbackURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		ttl:     cfg.CacheTTL,
		lists:   lists,
		rates:   rates,
		logger:  logger,
		metrics: m,
	}
}

// Currencies returns the code-to-name map of all currencies the feed knows.
// A valid cached snapshot is returned without any network access.
func (c *Client) Currencies(ctx context.Context) (domain.CurrencyList, error) {
	if list, ok, err := c.lists.Get(ctx, listCacheKey); err == nil && ok {
		c.logger.Debug("currency list served from cache")
		c.recordCacheHit(listCacheName)
		return list, nil
	} else if err != nil {
		c.logger.Error("currency list cache read failed", "error", err)
	}
	c.recordCacheMiss(listCacheName)

	list, err := fetchJSON[domain.CurrencyList](ctx, c, currenciesEndpoint)
	if err != nil {
		return nil, err
	}

	if err := c.lists.Set(ctx, listCacheKey, list, c.ttl); err != nil {
		c.logger.Error("currency list cache write failed", "error", err)
	}
	return list, nil
}

// Rates returns the rate table with base as the implicit base currency. The
// base is normalized to lower case; a valid cached table is returned without
// any network access, and a stale one is refetched rather than served.
func (c *Client) Rates(ctx context.Context, base string) (domain.RateTable, error) {
	base = strings.ToLower(base)
	key := rateCachePrefix + base

	if table, ok, err := c.rates.Get(ctx, key); err == nil && ok {
		c.logger.Debug("rate table served from cache", "base", base)
		c.recordCacheHit(rateCacheName)
		return table, nil
	} else if err != nil {
		c.logger.Error("rate table cache read failed", "base", base, "error", err)
	}
	c.recordCacheMiss(rateCacheName)

	// The per-base document is an envelope keyed by the base code itself.
	endpoint := "/currencies/" + base + ".json"
	envelope, err := fetchJSON[map[string]json.RawMessage](ctx, c, endpoint)
	if err != nil {
		return nil, err
	}

	raw, ok := envelope[base]
	if !ok {
		return nil, fmt.Errorf("feed response for %q is missing its rate table", base)
	}
	var table domain.RateTable
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("decode rate table for %q: %w", base, err)
	}

	if err := c.rates.Set(ctx, key, table, c.ttl); err != nil {
		c.logger.Error("rate table cache write failed", "base", base, "error", err)
	}
	return table, nil
}

// Convert converts amount from one currency to another using the table with
// from as base. Converting a currency to itself returns the amount unchanged
// without touching the network, avoiding rounding drift on the identity case.
func (c *Client) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	from = strings.ToLower(from)
	to = strings.ToLower(to)
	if from == to {
		return amount, nil
	}

	table, err := c.Rates(ctx, from)
	if err != nil {
		return 0, err
	}

	rate, ok := table[to]
	if !ok {
		return 0, &domain.RateNotFoundError{Currency: to}
	}

	if c.metrics != nil {
		c.metrics.RecordConversion(from, to)
	}
	return amount * rate, nil
}

// fetchJSON issues a GET for endpoint against the primary host. A primary
// failure is non-fatal: the same request is retried once against the mirror
// before the call fails with a FetchError naming both attempted URLs. Each
// attempt decodes into its own fresh value, so a response that fails
// mid-decode can never leak partial data into the other host's payload; the
// result is always exactly one host's document.
func fetchJSON[T any](ctx context.Context, c *Client, endpoint string) (T, error) {
	primaryURL := c.primaryURL + endpoint
	out, primaryErr := get[T](ctx, c, endpoint, "primary", primaryURL)
	if primaryErr == nil {
		return out, nil
	}

	c.logger.Warn("primary feed request failed, trying mirror",
		"endpoint", endpoint, "error", primaryErr)
	if c.metrics != nil {
		c.metrics.RecordFallback()
	}

	fallbackURL := c.fallbackURL + endpoint
	out, fallbackErr := get[T](ctx, c, endpoint, "fallback", fallbackURL)
	if fallbackErr == nil {
		return out, nil
	}

	var zero T
	return zero, &domain.FetchError{
		Endpoint:    endpoint,
		PrimaryURL:  primaryURL,
		FallbackURL: fallbackURL,
		PrimaryErr:  primaryErr,
		FallbackErr: fallbackErr,
	}
}

func get[T any](ctx context.Context, c *Client, endpoint, source, url string) (T, error) {
	var out T
	start := time.Now()
	err := c.doGet(ctx, url, &out)
	if c.metrics != nil {
		c.metrics.ObserveFetchDuration(endpoint, time.Since(start).Seconds())
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		c.metrics.RecordFetch(endpoint, source, outcome)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (c *Client) doGet(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) recordCacheHit(name string) {
	if c.metrics != nil {
		c.metrics.RecordCacheHit(name)
	}
}

func (c *Client) recordCacheMiss(name string) {
	if c.metrics != nil {
		c.metrics.RecordCacheMiss(name)
	}
}
