// Package http provides the shared outbound HTTP client used by the
// documentation sources. It maps transport failures onto the docquery
// error codes, applies per-host politeness rate limiting, and attaches
// an optional bearer credential.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/fwojciec/docquery"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the default per-request timeout.
const DefaultTimeout = 10 * time.Second

// DefaultRequestsPerSec is the default per-host outbound rate limit.
const DefaultRequestsPerSec = 4.0

// maxBodyBytes caps response bodies; documentation pages and API payloads
// beyond this size are truncated rather than buffered whole.
const maxBodyBytes = 4 << 20

// Client retrieves HTML and JSON payloads from documentation sources.
// A Client is safe for concurrent use; sources within one process may
// share it or own one each.
type Client struct {
	client *http.Client
	token  string
	rps    float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithToken sets a bearer credential attached to every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithRequestsPerSec sets the per-host rate limit.
// Defaults to DefaultRequestsPerSec; zero or negative disables limiting.
func WithRequestsPerSec(rps float64) Option {
	return func(c *Client) {
		c.rps = rps
	}
}

// NewClient creates a new Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		client:   &http.Client{Timeout: DefaultTimeout},
		rps:      DefaultRequestsPerSec,
		limiters: make(map[string]*rate.Limiter),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetHTML retrieves the body at rawURL as a string.
func (c *Client) GetHTML(ctx context.Context, rawURL string) (string, error) {
	body, err := c.get(ctx, rawURL, "text/html")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetJSON retrieves the body at rawURL and decodes it into v.
// A body that does not decode is reported as EPARSE.
func (c *Client) GetJSON(ctx context.Context, rawURL string, v any) error {
	body, err := c.get(ctx, rawURL, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return docquery.Errorf(docquery.EPARSE, "decoding response from %s: %v", rawURL, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, rawURL, accept string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, docquery.Errorf(docquery.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	if err := c.wait(ctx, u.Host); err != nil {
		return nil, mapContextErr(err, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, docquery.Errorf(docquery.EINVALID, "building request for %q: %v", rawURL, err)
	}
	req.Header.Set("Accept", accept)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, mapTransportErr(err, rawURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, docquery.Errorf(docquery.ENOTFOUND, "%s not found", rawURL)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, docquery.Errorf(docquery.EUPSTREAM, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, mapTransportErr(err, rawURL)
	}
	return body, nil
}

// wait blocks until the per-host rate limit allows a request to host.
func (c *Client) wait(ctx context.Context, host string) error {
	if c.rps <= 0 {
		return nil
	}
	c.mu.Lock()
	limiter, ok := c.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(c.rps), 1)
		c.limiters[host] = limiter
	}
	c.mu.Unlock()

	return limiter.Wait(ctx)
}

// mapTransportErr converts a transport-level failure into a typed error:
// deadline expiry becomes ETIMEOUT, everything else EUNAVAILABLE.
func mapTransportErr(err error, rawURL string) error {
	if isTimeout(err) {
		return docquery.Errorf(docquery.ETIMEOUT, "request to %s timed out: %v", rawURL, err)
	}
	return docquery.Errorf(docquery.EUNAVAILABLE, "request to %s failed: %v", rawURL, err)
}

func mapContextErr(err error, rawURL string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return docquery.Errorf(docquery.ETIMEOUT, "request to %s timed out: %v", rawURL, err)
	}
	return docquery.Errorf(docquery.EUNAVAILABLE, "request to %s aborted: %v", rawURL, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}
