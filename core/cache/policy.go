// Package cache decides whether a stored fetch result is still fresh enough
// to serve. Two independent tiers exist: Persistent, backed by the durable
// key-value store with a one minute window, and Session, an in-process map
// with a five minute window. A value fresh in one tier says nothing about
// the other.
package cache

import (
	"context"
	"time"

	"newsdesk-api/core/domain"
)

// Tier names used in logs and metrics
const (
	TierPersistent = "persistent"
	TierSession    = "session"
)

// Freshness windows
const (
	PersistentWindow = 60 * time.Second
	SessionWindow    = 5 * time.Minute
)

// Policy is a cache tier with its own freshness window
type Policy interface {
	// Name returns the tier name
	Name() string

	// Window returns how long an entry stays servable
	Window() time.Duration

	// Key derives the storage key for a logical query
	Key(q domain.QueryKey) string

	// Get returns the stored result and true only when the entry is fresh
	Get(ctx context.Context, key string) (domain.FetchResult, bool)

	// Set stores result stamped with the current time, overwriting any entry
	Set(ctx context.Context, key string, result domain.FetchResult)
}

// Option configures a policy
type Option func(*options)

type options struct {
	now    func() time.Time
	window time.Duration
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithWindow overrides the tier's default freshness window
func WithWindow(window time.Duration) Option {
	return func(o *options) {
		if window > 0 {
			o.window = window
		}
	}
}

func buildOptions(window time.Duration, opts []Option) options {
	o := options{now: time.Now, window: window}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
