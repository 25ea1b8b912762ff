package freshness

import "time"

// Option configures a Queue at construction time.
type Option func(*config)

type config struct {
	maxAge time.Duration
	now    func() time.Time
}

func newConfig(opts ...Option) config {
	cfg := config{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxAge bounds how old a dequeued entry may be; entries older than
// d are dropped (counted as stale) instead of returned. Zero (the
// default) means no age bound.
func WithMaxAge(d time.Duration) Option {
	return func(c *config) {
		c.maxAge = d
	}
}

// WithClock overrides the queue's time source, primarily for
// deterministic testing of age-based eviction. Panics on a nil clock.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("freshness: WithClock(nil)")
	}
	return func(c *config) {
		c.now = now
	}
}
