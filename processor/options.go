// SPDX-License-Identifier: MIT

package processor

import (
	"log/slog"

	"github.com/katalvlaran/docwarp"
	"github.com/katalvlaran/docwarp/warp"
)

// DefaultQueueSize is the number of requests buffered ahead of the worker.
const DefaultQueueSize = 8

const panicQueueSizeInvalid = "processor: WithQueueSize: size must be >= 0"

// Option mutates Options.
type Option func(*Options)

// Options configures a Processor.
type Options struct {
	queueSize int
	logger    *slog.Logger
	warpOpts  []warp.Option
}

// WithQueueSize sets the request buffer. Zero makes every submission wait
// for the worker.
func WithQueueSize(n int) Option {
	if n < 0 {
		panic(panicQueueSizeInvalid)
	}

	return func(o *Options) { o.queueSize = n }
}

// WithLogger routes lifecycle logs to l instead of docwarp.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithWarpOptions sets options applied to every Distort request before the
// per-request ones.
func WithWarpOptions(opts ...warp.Option) Option {
	return func(o *Options) { o.warpOpts = append(o.warpOpts, opts...) }
}

func gatherOptions(user ...Option) Options {
	o := Options{queueSize: DefaultQueueSize}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = docwarp.Logger()
	}

	return o
}
