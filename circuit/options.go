package circuit

// Option configures a Builder at construction time. Option constructors
// validate and panic on programmer error, never on runtime data.
type Option func(*builderConfig)

type builderConfig struct {
	logger Logger
}

func newBuilderConfig(opts ...Option) *builderConfig {
	cfg := &builderConfig{logger: noopLogger{}}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger installs the Logger used to report operator-internal
// errors during Step. Panics on a nil logger — a construction-time
// programmer error, not a runtime data error.
func WithLogger(l Logger) Option {
	if l == nil {
		panic("circuit: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
