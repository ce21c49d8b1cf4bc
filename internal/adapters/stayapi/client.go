// internal/adapters/stayapi/client.go
package stayapi

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"checkinn/internal/adapters/observability"
	"checkinn/internal/domain"
)

// Client talks to the CheckInn backend. The auth endpoints historically
// lived on a different host than the rest of the API, so both bases are
// configurable; authBase falls back to apiBase when empty.
type Client struct {
	apiBase  string
	authBase string
	hc       *http.Client
	rl       *rate.Limiter
}

func New(apiBase, authBase string, rps int, timeout time.Duration) (*Client, error) {
	if apiBase == "" {
		return nil, fmt.Errorf("API base URL is required")
	}
	if authBase == "" {
		authBase = apiBase
	}
	if rps <= 0 {
		rps = 5
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		apiBase:  strings.TrimRight(apiBase, "/"),
		authBase: strings.TrimRight(authBase, "/"),
		hc:       &http.Client{Timeout: timeout},
		rl:       rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// do performs one JSON request with client-side rate limiting and
// retries on 429/transient 5xx, honoring Retry-After when provided.
// Non-retryable statuses map onto the domain taxonomy: a transport
// failure is ErrNetwork, 401 is ErrUnauthenticated, anything else
// non-2xx is a RejectedError carrying the backend message.
func (c *Client) do(ctx context.Context, method, url, endpoint, bearer string, headers map[string]string, in, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", endpoint, err)
		}
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		// fresh request each attempt
		var rdr io.Reader
		if body != nil {
			rdr = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, rdr)
		if err != nil {
			return err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "checkinn/1.0")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveExternal("stayapi", endpoint, 0, time.Since(start))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = fmt.Errorf("%w: %v", domain.ErrNetwork, err)
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveExternal("stayapi", endpoint, resp.StatusCode, time.Since(start))

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			if out == nil || resp.StatusCode == http.StatusNoContent {
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				return nil
			}
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if err != nil {
				return fmt.Errorf("%w: decode %s: %v", domain.ErrMalformed, endpoint, err)
			}
			return nil

		case resp.StatusCode == http.StatusUnauthorized:
			resp.Body.Close()
			return domain.ErrUnauthenticated

		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusInternalServerError ||
			resp.StatusCode == http.StatusBadGateway || resp.StatusCode == http.StatusServiceUnavailable ||
			resp.StatusCode == http.StatusGatewayTimeout:
			// Prefer server-provided Retry-After; otherwise exponential backoff.
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = &domain.RejectedError{Status: resp.StatusCode}
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			msg := rejectionMessage(resp.Body)
			resp.Body.Close()
			return &domain.RejectedError{Status: resp.StatusCode, Message: msg}
		}
	}

	return lastErr
}

func (c *Client) post(ctx context.Context, base, path, endpoint, bearer string, headers map[string]string, in, out any) error {
	return c.do(ctx, http.MethodPost, base+path, endpoint, bearer, headers, in, out)
}

func (c *Client) get(ctx context.Context, path, endpoint, bearer string, out any) error {
	return c.do(ctx, http.MethodGet, c.apiBase+path, endpoint, bearer, nil, nil, out)
}

// rejectionMessage pulls the backend's "message" field out of an error
// body, reading at most a few KB for diagnostics.
func rejectionMessage(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	var env struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(b, &env); err == nil {
		if env.Message != "" {
			return env.Message
		}
		if env.Error != "" {
			return env.Error
		}
	}
	return strings.TrimSpace(string(b))
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential backoff delay with concurrency-safe jitter.
// i = retry attempt (0,1,2,...). Base doubles each attempt (200ms, 400ms, 800ms...),
// with up to +50% random jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
