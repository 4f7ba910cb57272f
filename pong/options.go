package pong

import "github.com/meghashyamc/pong2d/logger"

// Option configures a Ball, Paddle or Match at construction.
type Option func(*options)

type options struct {
	logger logger.Logger
}

// WithLogger sets the logger used for debug events. Entities log nothing by default.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
