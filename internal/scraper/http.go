package scraper

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultUserAgent is sent with every provider request.
// Some providers reject the Go default agent.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

type HTTPConfig struct {
	BaseURL        string
	RateLimiter    *rate.Limiter
	RequestTimeout time.Duration
	UserAgent      string
}

// DefaultHTTPConfig builds a config limited to requestsPerSecond.
// A non-positive rate disables limiting.
func DefaultHTTPConfig(baseURL string, requestsPerSecond float64) *HTTPConfig {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &HTTPConfig{
		BaseURL:        baseURL,
		RateLimiter:    rate.NewLimiter(limit, 1),
		RequestTimeout: 30 * time.Second,
		UserAgent:      DefaultUserAgent,
	}
}

// NewClient returns an http.Client honouring RequestTimeout (0 means no timeout).
func (c *HTTPConfig) NewClient() *http.Client {
	return &http.Client{Timeout: c.RequestTimeout}
}
