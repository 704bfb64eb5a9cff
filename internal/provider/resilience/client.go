// Package resilience provides a resilient HTTP client for external
// provider calls: per-request timeout, circuit breaker, and optional
// retry with exponential backoff.
package resilience

import (
	"errors"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker/v2"
)

// ErrCircuitOpen is returned when the circuit breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// ClientConfig holds configuration for the resilient HTTP client.
type ClientConfig struct {
	// Name identifies this client for circuit breaker naming.
	Name string

	// Timeout is the request timeout for individual HTTP calls.
	// Default: 10 seconds.
	Timeout time.Duration

	// MaxRetries is the number of retry attempts after the first call.
	// Zero means no retries: a caller with a strict upstream call
	// budget gets exactly one attempt.
	MaxRetries uint64

	// InitialInterval is the initial retry backoff interval.
	// Default: 200ms.
	InitialInterval time.Duration

	// MaxInterval is the maximum retry backoff interval.
	// Default: 5 seconds.
	MaxInterval time.Duration

	// Breaker overrides the circuit breaker settings. If nil,
	// defaults from NewBreaker are used.
	Breaker *BreakerConfig
}

// DefaultClientConfig returns retrying defaults suitable for most
// provider clients.
func DefaultClientConfig(name string) ClientConfig {
	return ClientConfig{
		Name:            name,
		Timeout:         10 * time.Second,
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

// SingleAttemptConfig returns a config with retries disabled, for
// callers whose contract bounds the number of upstream calls.
func SingleAttemptConfig(name string, timeout time.Duration) ClientConfig {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return ClientConfig{
		Name:    name,
		Timeout: timeout,
	}
}

// Client is a resilient HTTP client.
type Client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*http.Response]
	config     ClientConfig
}

// NewClient creates a new resilient HTTP client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.InitialInterval == 0 {
		cfg.InitialInterval = 200 * time.Millisecond
	}
	if cfg.MaxInterval == 0 {
		cfg.MaxInterval = 5 * time.Second
	}

	bcfg := cfg.Breaker
	if bcfg == nil {
		def := DefaultBreakerConfig(cfg.Name)
		bcfg = &def
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    NewBreaker[*http.Response](*bcfg), //nolint:bodyclose // type parameter, not a response
		config:     cfg,
	}
}

// Do executes the request through the circuit breaker, retrying
// transient failures (network errors, 5xx) up to MaxRetries times.
// Responses with status below 500 are returned as-is; interpreting
// provider status codes is the caller's job.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.config.InitialInterval
	bo.MaxInterval = c.config.MaxInterval
	bo.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, c.config.MaxRetries), ctx)

	var lastResp *http.Response

	operation := func() error {
		resp, err := c.breaker.Execute(func() (*http.Response, error) { //nolint:bodyclose // caller closes
			r, doErr := c.httpClient.Do(req.Clone(ctx))
			if doErr != nil {
				return nil, doErr
			}
			if r.StatusCode >= 500 {
				return r, &ServerError{StatusCode: r.StatusCode}
			}
			return r, nil
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return backoff.Permanent(ErrCircuitOpen)
			}
			if resp != nil {
				// Keep the newest response readable for the caller;
				// only the one it replaces is done with.
				drain(lastResp)
				lastResp = resp
			}
			return err
		}

		drain(lastResp)
		lastResp = resp
		return nil
	}

	if err := backoff.Retry(operation, policy); err != nil {
		if lastResp != nil {
			// A 5xx that exhausted retries: hand the final response back.
			return lastResp, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, ctxErr
		}
		return nil, err
	}
	return lastResp, nil
}

// BreakerState returns the current circuit breaker state.
func (c *Client) BreakerState() gobreaker.State {
	return c.breaker.State()
}

// drain closes a superseded attempt's body so the connection can be
// reused by the next attempt. Nil-safe.
func drain(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
}

// ServerError represents an HTTP 5xx response treated as a failure for
// retry and circuit breaker accounting.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return "server error: " + http.StatusText(e.StatusCode)
}
