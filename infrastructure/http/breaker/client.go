// ABOUTME: Circuit breaker decorator for the upstream HTTP client
// ABOUTME: Stops calling an upstream that keeps failing until its cool-down has passed

package breaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"newsdesk-api/core/interfaces"
)

// errServerStatus marks a 5xx response as a failure for the breaker's counts
var errServerStatus = errors.New("upstream server error")

// Config holds the breaker settings
type Config struct {
	// Name is used in logs
	Name string

	// MaxRequests is the number of trial requests allowed while half-open
	MaxRequests uint32

	// Interval clears the closed-state counts periodically
	Interval time.Duration

	// Timeout is how long the breaker stays open
	Timeout time.Duration

	// FailureThreshold is the failure ratio that trips the breaker
	FailureThreshold float64

	// MinRequests must be observed before the ratio is considered
	MinRequests uint32
}

// DefaultConfig returns settings suited to the news upstreams
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// Client wraps an HTTPClient with a circuit breaker
type Client struct {
	next    interfaces.HTTPClient
	breaker *gobreaker.CircuitBreaker
}

// New wraps next. Transport errors and 5xx responses count as failures.
func New(next interfaces.HTTPClient, cfg Config, logger interfaces.Logger) *Client {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed", map[string]interface{}{
				"circuit": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	}

	return &Client{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Get performs the request through the breaker. While open it fails fast
// with gobreaker.ErrOpenState without touching the network.
func (c *Client) Get(ctx context.Context, url string) (interfaces.Response, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.next.Get(ctx, url)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode() >= 500 {
			return resp, fmt.Errorf("%w: %d", errServerStatus, resp.StatusCode())
		}
		return resp, nil
	})

	if errors.Is(err, errServerStatus) {
		return result.(interfaces.Response), nil
	}
	if err != nil {
		return nil, err
	}

	return result.(interfaces.Response), nil
}

// State reports the breaker state, e.g. "closed" or "open"
func (c *Client) State() string {
	return c.breaker.State().String()
}
