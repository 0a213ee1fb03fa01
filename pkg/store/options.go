package store

import (
	"github.com/rs/zerolog"
)

// Option configures a File.
type Option func(*options)

type options struct {
	atomic bool
	logger *zerolog.Logger
}

func defaults() *options {
	return &options{
		atomic: true,
	}
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithAtomicRewrite selects how Rewrite replaces the file. When enabled (the
// default) the new content is written to a temporary file in the same
// directory and renamed over the target. When disabled the target is
// truncated and written in place.
func WithAtomicRewrite(enabled bool) Option {
	return func(o *options) {
		o.atomic = enabled
	}
}

// WithLogger sets the logger. Without it the logger carried by each call's
// context is used.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
