package nhuff

import "github.com/axiomhq/nhuff/pkg/logger"

// Option configures tree construction and training.
type Option func(*options)

type options struct {
	log logger.Logger
}

func newOptions(opts []Option) options {
	o := options{log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger routes construction warnings to l.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
