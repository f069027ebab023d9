// SPDX-License-Identifier: MIT

package warp

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/docwarp"
	"github.com/katalvlaran/docwarp/matrix"
)

// ---------- Defaults ----------

const (
	// DefaultTolerance is the pivot magnitude below which the corner system
	// is reported as singular.
	DefaultTolerance = matrix.SingularEpsilon

	// DefaultTargetWidth and DefaultTargetHeight of 0 mean "same as source".
	DefaultTargetWidth  = 0
	DefaultTargetHeight = 0
)

const panicToleranceInvalid = "warp: WithTolerance: eps must be finite, non-negative"

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved configuration of a Distort call.
type Options struct {
	width, height int          // 0 ⇒ source dimensions
	eps           float64      // DefaultTolerance
	logger        *slog.Logger // nil ⇒ docwarp.Logger()
}

// WithTargetSize sets the destination dimensions. Zero keeps the source
// dimension on that axis; negative values make Distort fail with
// ErrInvalidTargetSize.
func WithTargetSize(width, height int) Option {
	return func(o *Options) { o.width, o.height = width, height }
}

// WithTolerance overrides the singularity threshold used when inverting the
// destination corner system.
//
// Panics when eps is NaN, ±Inf or negative.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithLogger routes this call's diagnostics to l instead of docwarp.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user setters on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		width:  DefaultTargetWidth,
		height: DefaultTargetHeight,
		eps:    DefaultTolerance,
	}
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
