// Package http provides a resty-based implementation of alpenpass.Fetcher
// that presents itself as a desktop browser.
package http

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"github.com/fwojciec/alpenpass"
	"github.com/go-resty/resty/v2"
)

// DefaultFetchTimeout is the default timeout for a whole request.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is a current desktop Chrome user agent. The site answers
// requests without a browser user agent with an error page.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// browserHeaders are sent with every request besides the user agent.
// Accept-Encoding is left to the transport so compressed bodies are
// decoded transparently.
var browserHeaders = map[string]string{
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"DNT":                       "1",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
}

var _ alpenpass.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content over plain HTTP. It does not execute
// JavaScript.
type Fetcher struct {
	client    *resty.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	// A cookie jar keeps the session the site establishes on first visit.
	jar, _ := cookiejar.New(nil)

	f.client = resty.New().
		SetTimeout(f.timeout).
		SetCookieJar(jar).
		SetHeaders(browserHeaders).
		SetHeader("User-Agent", f.userAgent)

	return f
}

// Fetch retrieves the body of the given URL. Any non-2xx response is an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", err
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode(), url)
	}
	return resp.String(), nil
}

// Close releases idle connections held by the underlying client.
func (f *Fetcher) Close() error {
	f.client.GetClient().CloseIdleConnections()
	return nil
}
