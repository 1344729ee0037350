package list

import "go.uber.org/zap"

// Option is a list configuration option.
type Option interface {
	apply(*listOptions)
}

type listOptions struct {
	logger *zap.Logger
	name   string
}

func newDefaultListOptions() listOptions {
	return listOptions{
		logger: nopLogger,
	}
}

// WithLogger option configures the logger failed operations are reported to.
//
// The zero value configures a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return funcOption(func(opts *listOptions) {
		if logger == nil {
			logger = nopLogger
		}
		opts.logger = logger
	})
}

// WithName option configures a name attached to every log entry of the list.
func WithName(name string) Option {
	return funcOption(func(opts *listOptions) {
		opts.name = name
	})
}

type funcOption func(*listOptions)

func (o funcOption) apply(opts *listOptions) {
	o(opts)
}
