package roster

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/repository"
)

// Option is a function that configures a Client.
type Option func(*options)

// options holds the Client configuration.
type options struct {
	path          string
	atomicRewrite bool
	strictKeys    bool
	logger        *zerolog.Logger
	storage       repository.Storage
}

func defaults() *options {
	return &options{
		path:          constants.DefaultStoreFile,
		atomicRewrite: true,
		strictKeys:    false,
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

// WithPath sets the storage file. The default is employees.csv in the
// working directory.
func WithPath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.path = path
		}
	}
}

// WithAtomicRewrite selects whether full rewrites replace the storage file
// atomically (the default) or truncate it in place.
func WithAtomicRewrite(enabled bool) Option {
	return func(o *options) {
		o.atomicRewrite = enabled
	}
}

// WithStrictKeys makes DeleteEmployee and EditEmployee return an
// *errors.NotFoundError when no record has the given key. Otherwise a
// missing key is logged and ignored.
func WithStrictKeys(enabled bool) Option {
	return func(o *options) {
		o.strictKeys = enabled
	}
}

// WithLogger sets the logger used by the client and its storage.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStorage replaces the file storage, mainly for tests. WithPath and
// WithAtomicRewrite have no effect when it is set.
func WithStorage(storage repository.Storage) Option {
	return func(o *options) {
		o.storage = storage
	}
}
