package cluster

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

func newConfig(opts ...Option) *config {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config{
		logger:                 logger,
		serverSelectionTimeout: 30 * time.Second,
	}

	cfg.apply(opts...)

	return cfg
}

// Option configures a tracker.
type Option func(*config)

type config struct {
	logger                 *logrus.Logger
	serverSelectionTimeout time.Duration
}

func (c *config) apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// WithLogger configures the logger used to report topology transitions.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithServerSelectionTimeout configures how long SelectServer waits for an
// eligible server before giving up.
func WithServerSelectionTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.serverSelectionTimeout = timeout
	}
}
