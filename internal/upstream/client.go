// Package upstream talks to the external market-data providers. Clients only
// move bytes: they return the decoded JSON document untouched and leave all
// interpretation to the reshape package.
package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/guttosm/bistpulse/internal/logger"
	"github.com/guttosm/bistpulse/internal/payload"
)

const (
	// DefaultUserAgent is sent when no explicit User-Agent header is configured.
	DefaultUserAgent = "Mozilla/5.0"

	maxBodyBytes   = 8 << 20
	maxExcerptRune = 160
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=upstream_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient builds an *http.Client for provider calls. timeout bounds the
// whole exchange, including reading the body.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   32,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}

// Error is returned for every failed provider call: transport failures,
// non-2xx statuses and bodies that are not JSON.
type Error struct {
	Provider string // display name, e.g. "TradingView"
	Status   int    // HTTP status, 0 when no response was received
	Body     string // leading excerpt of the response body for status errors
	Err      error  // underlying cause, nil for status errors
}

func (e *Error) Error() string {
	if e.Status != 0 && e.Err == nil {
		msg := fmt.Sprintf("%s HTTP %d", e.Provider, e.Status)
		if e.Body != "" {
			msg += ": " + e.Body
		}
		return msg
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsTimeout reports whether err was caused by a deadline.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// client holds what both providers share.
type client struct {
	provider   string
	endpoint   string
	httpClient HTTPClient
	header     http.Header
}

// Option configures a provider client.
type Option func(*client)

// WithEndpoint overrides the provider URL.
func WithEndpoint(endpoint string) Option {
	return func(c *client) {
		c.endpoint = strings.TrimRight(endpoint, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) Option {
	return func(c *client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// WithUserAgent replaces the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *client) {
		if ua != "" {
			c.header.Set("User-Agent", ua)
		}
	}
}

func newClient(provider, endpoint string, options []Option) client {
	c := client{
		provider:   provider,
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
		header:     http.Header{"User-Agent": []string{DefaultUserAgent}},
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// do executes req and decodes the JSON body into an untyped document.
func (c *client) do(req *http.Request) (any, error) {
	for key, values := range c.header {
		if req.Header.Get(key) != "" {
			continue
		}
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	log := logger.With("upstream")
	start := time.Now()

	res, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Str("provider", c.provider).Str("url", req.URL.Redacted()).
			Bool("timeout", IsTimeout(err)).Dur("elapsed", time.Since(start)).Err(err).Msg("upstream_failed")
		return nil, &Error{Provider: c.provider, Err: err}
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			log.Debug().Err(err).Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, &Error{Provider: c.provider, Status: res.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	log.Debug().Str("provider", c.provider).Str("url", req.URL.Redacted()).
		Int("status", res.StatusCode).Int("bytes", len(body)).Dur("elapsed", time.Since(start)).Msg("upstream_request")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &Error{Provider: c.provider, Status: res.StatusCode, Body: excerpt(body)}
	}

	doc, err := payload.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Provider: c.provider, Status: res.StatusCode, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	return doc, nil
}

// excerpt returns at most maxExcerptRune leading runes of body.
func excerpt(body []byte) string {
	s := strings.TrimSpace(string(body))
	r := []rune(s)
	if len(r) > maxExcerptRune {
		return string(r[:maxExcerptRune])
	}
	return s
}
