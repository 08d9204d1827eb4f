// Package catalog fetches product records from the Open Food Facts HTTP API.
// The client layers a TTL cache, a connectivity gate, per-attempt timeouts,
// and an exponential-backoff retry policy over the raw transport, and maps
// every failure to a typed error.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultBaseURL is the public Open Food Facts v2 API root.
	DefaultBaseURL = "https://world.openfoodfacts.org/api/v2"
	// DefaultCacheTTL is how long a fetched product record stays valid.
	DefaultCacheTTL = 300 * time.Second
	// DefaultRetryCount is the number of extra attempts after the first.
	DefaultRetryCount = 3
	// DefaultRetryWaitTime is the backoff base; attempt n waits base*2^n.
	DefaultRetryWaitTime = 1 * time.Second
	// DefaultRetryMaxWaitTime caps a single backoff delay.
	DefaultRetryMaxWaitTime = 4 * time.Second
	// DefaultPageSize is the search page size.
	DefaultPageSize = 20
)

// Connectivity reports whether the host currently has network access. The
// client fails fast with an offline error instead of attempting a request
// when it returns false.
type Connectivity interface {
	Online() bool
}

// alwaysOnline is the default Connectivity: assume the network is there and
// let the transport report otherwise.
type alwaysOnline struct{}

func (alwaysOnline) Online() bool { return true }

// AlwaysOnline returns the default connectivity checker.
func AlwaysOnline() Connectivity { return alwaysOnline{} }

// Options configures a Client. Zero fields fall back to the package
// defaults.
type Options struct {
	BaseURL          string
	UserAgent        string
	CacheTTL         time.Duration
	RetryCount       int
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
	PageSize         int
	Connectivity     Connectivity
}

// Client is a resilient catalog client. Safe for concurrent use: the cache
// is internally locked and the remaining state is read-only after New.
type Client struct {
	httpc        *resty.Client
	cache        *Cache
	connectivity Connectivity
	logger       hclog.Logger
	opts         Options
}

// New wraps the given resty client. The caller configures transport concerns
// (timeout, TLS, proxy) on httpc; retry policy belongs to this client, so
// httpc should have resty's own retries disabled.
func New(httpc *resty.Client, opts Options, logger hclog.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.RetryCount == 0 {
		opts.RetryCount = DefaultRetryCount
	}
	if opts.RetryWaitTime == 0 {
		opts.RetryWaitTime = DefaultRetryWaitTime
	}
	if opts.RetryMaxWaitTime == 0 {
		opts.RetryMaxWaitTime = DefaultRetryMaxWaitTime
	}
	if opts.PageSize == 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Connectivity == nil {
		opts.Connectivity = alwaysOnline{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	httpc.SetBaseURL(opts.BaseURL)
	if opts.UserAgent != "" {
		httpc.SetHeader("User-Agent", opts.UserAgent)
	}

	return &Client{
		httpc:        httpc,
		cache:        NewCache(),
		connectivity: opts.Connectivity,
		logger:       logger,
		opts:         opts,
	}
}

// cacheKey builds the cache key for a product lookup.
func cacheKey(barcode string) string {
	return "product_" + barcode
}

// FetchProduct returns the product record for barcode, serving it from the
// cache when a fresh entry exists. Only a successful, found response is
// cached. Typed errors distinguish offline, timeout, not-found, server, and
// parse failures; transient failures are retried with exponential backoff
// until the retry budget is exhausted.
func (c *Client) FetchProduct(ctx context.Context, barcode string) (*ProductRecord, error) {
	key := cacheKey(barcode)
	if rec, ok := c.cache.Get(key); ok {
		c.logger.Debug("catalog cache hit", "barcode", barcode)
		return rec, nil
	}

	if !c.connectivity.Online() {
		return nil, newError(KindOffline, barcode, 0, nil)
	}

	out, err := c.withRetry(ctx, barcode, func(ctx context.Context) (interface{}, error) {
		return c.fetchProductOnce(ctx, barcode)
	})
	if err != nil {
		return nil, err
	}

	rec := out.(*ProductRecord)
	c.cache.Set(key, rec, c.opts.CacheTTL)
	return rec, nil
}

// Invalidate drops the cached record for barcode, forcing the next
// FetchProduct to hit the network.
func (c *Client) Invalidate(barcode string) {
	c.cache.Delete(cacheKey(barcode))
}

// CleanupCache sweeps expired cache entries and returns how many were
// removed.
func (c *Client) CleanupCache() int {
	return c.cache.Cleanup()
}

// Search runs a free-text product search. Results are not cached and not
// part of the analysis path.
func (c *Client) Search(ctx context.Context, query string, page int) (*SearchResult, error) {
	if page < 1 {
		page = 1
	}

	if !c.connectivity.Online() {
		return nil, newError(KindOffline, "", 0, nil)
	}

	out, err := c.withRetry(ctx, "", func(ctx context.Context) (interface{}, error) {
		return c.searchOnce(ctx, query, page)
	})
	if err != nil {
		return nil, err
	}
	return out.(*SearchResult), nil
}

// withRetry runs op until it succeeds, fails terminally, or exhausts the
// retry budget. The backoff delay between attempts doubles each time and is
// cancellable through ctx.
func (c *Client) withRetry(ctx context.Context, barcode string, op func(context.Context) (interface{}, error)) (interface{}, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		out, err := op(ctx)
		if err == nil {
			return out, nil
		}
		if !retryable(err) {
			return nil, err
		}
		lastErr = err

		if attempt >= c.opts.RetryCount {
			return nil, newError(KindMaxRetriesExceeded, barcode, 0, lastErr)
		}

		delay := backoffDelay(c.opts.RetryWaitTime, c.opts.RetryMaxWaitTime, attempt)
		c.logger.Debug("retrying catalog request",
			"barcode", barcode, "attempt", attempt+1, "delay", delay, "error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

// backoffDelay computes base*2^attempt capped at max.
func backoffDelay(base, max time.Duration, attempt int) time.Duration {
	delay := base << uint(attempt)
	if max > 0 && delay > max {
		return max
	}
	return delay
}

// fetchProductOnce performs one bounded lookup attempt.
func (c *Client) fetchProductOnce(ctx context.Context, barcode string) (interface{}, error) {
	resp, err := c.httpc.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/product/%s.json", url.PathEscape(barcode)))
	if err != nil {
		return nil, c.classifyTransportError(barcode, err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusNotFound:
		return nil, newError(KindNotFound, barcode, code, nil)
	case code != http.StatusOK:
		return nil, newError(KindServerError, barcode, code, errors.New(resp.Status()))
	}

	var pr productResponse
	if err := json.Unmarshal(resp.Body(), &pr); err != nil {
		return nil, newError(KindFetchError, barcode, 0, fmt.Errorf("malformed catalog response: %w", err))
	}
	if pr.Status == 0 || pr.Product == nil {
		return nil, newError(KindNotFound, barcode, 0, verboseStatusErr(pr.StatusVerbose))
	}

	return pr.Product.toRecord(barcode), nil
}

// searchOnce performs one bounded search attempt.
func (c *Client) searchOnce(ctx context.Context, query string, page int) (interface{}, error) {
	resp, err := c.httpc.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"search_terms": query,
			"page":         strconv.Itoa(page),
			"page_size":    strconv.Itoa(c.opts.PageSize),
			"json":         "true",
		}).
		Get("/search")
	if err != nil {
		return nil, c.classifyTransportError("", err)
	}

	if code := resp.StatusCode(); code != http.StatusOK {
		return nil, newError(KindServerError, "", code, errors.New(resp.Status()))
	}

	var sr searchResponse
	if err := json.Unmarshal(resp.Body(), &sr); err != nil {
		return nil, newError(KindFetchError, "", 0, fmt.Errorf("malformed search response: %w", err))
	}

	result := &SearchResult{
		Query:    query,
		Count:    sr.Count,
		Page:     coerceInt(sr.Page),
		PageSize: coerceInt(sr.PageSize),
		Products: make([]ProductSummary, 0, len(sr.Products)),
	}
	if result.Page == 0 {
		result.Page = page
	}
	if result.PageSize == 0 {
		result.PageSize = c.opts.PageSize
	}
	for i := range sr.Products {
		result.Products = append(result.Products, sr.Products[i].toSummary())
	}
	return result, nil
}

// classifyTransportError maps transport failures onto the error taxonomy.
// Caller cancellation passes through untouched so callers can match
// context.Canceled directly.
func (c *Client) classifyTransportError(barcode string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if isTimeout(err) {
		return newError(KindTimeout, barcode, 0, err)
	}
	return newError(KindFetchError, barcode, 0, err)
}

// isTimeout reports whether err is a deadline or network timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// verboseStatusErr preserves the catalog's own explanation when present.
func verboseStatusErr(verbose string) error {
	if verbose == "" {
		return nil
	}
	return errors.New(verbose)
}
