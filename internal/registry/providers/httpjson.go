package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const userAgent = "consulta/1.0"

// httpSource is the shared skeleton of every HTTP-backed provider: a named
// endpoint, a client with its own timeout and a client-side rate limiter so
// bulk runs do not hammer free public APIs.
type httpSource struct {
	name    string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

func newHTTPSource(name, baseURL string, timeout time.Duration, minInterval time.Duration) httpSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if minInterval <= 0 {
		minInterval = 500 * time.Millisecond
	}
	return httpSource{
		name:    name,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

// getJSON performs a rate-limited GET and decodes the body into out, mapping
// HTTP statuses onto the provider error taxonomy.
func (s httpSource) getJSON(ctx context.Context, url string, out any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return s.ctxError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return NewError(CategoryTransport, s.name, "build request", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return s.ctxError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return NewError(CategoryNotFound, s.name, "no record for identifier", nil)
	case resp.StatusCode == http.StatusTooManyRequests:
		return NewError(CategoryRateLimited, s.name, "throttled by source", nil)
	default:
		return NewError(CategoryTransport, s.name, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewError(CategoryParse, s.name, "decode response body", err)
	}
	return nil
}

// ctxError classifies transport-level failures, folding deadline expiry into
// the timeout category.
func (s httpSource) ctxError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return NewError(CategoryTimeout, s.name, "attempt deadline exceeded", err)
	}
	var perr *Error
	if errors.As(err, &perr) {
		return perr
	}
	// http.Client wraps its own timeout in a url.Error with Timeout()=true.
	var timeoutErr interface{ Timeout() bool }
	if errors.As(err, &timeoutErr) && timeoutErr.Timeout() {
		return NewError(CategoryTimeout, s.name, "request timed out", err)
	}
	return NewError(CategoryTransport, s.name, "request failed", err)
}
