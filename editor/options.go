// SPDX-License-Identifier: MIT

package editor

import "math"

const (
	// DefaultHandleRadius is the drawn radius of a corner handle and the
	// inset applied when corners are reset.
	DefaultHandleRadius = 10.0

	// DefaultHitRadius is how close a press must land to grab a handle.
	DefaultHitRadius = 3 * DefaultHandleRadius

	// DefaultColorBoxFraction sizes the sampling box used to pick a
	// contrasting handle color, as a fraction of the smaller image dimension.
	DefaultColorBoxFraction = 0.1
)

// Stroke widths of the overlay.
const (
	HandleWidth         = 4.0
	HandleWidthSelected = 8.0
	EdgeWidth           = 1.0
	EdgeWidthSelected   = 3.0
)

const (
	panicHandleRadiusInvalid = "editor: WithHandleRadius: radius must be finite, > 0"
	panicHitRadiusInvalid    = "editor: WithHitRadius: radius must be finite, > 0"
	panicColorBoxInvalid     = "editor: WithColorBoxFraction: fraction must be in (0, 1]"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options configures a State.
type Options struct {
	handleRadius float64
	hitRadius    float64
	colorBox     float64
}

// WithHandleRadius sets the handle radius (and reset inset).
func WithHandleRadius(r float64) Option {
	if !positiveFinite(r) {
		panic(panicHandleRadiusInvalid)
	}

	return func(o *Options) { o.handleRadius = r }
}

// WithHitRadius sets the grab distance for Press.
func WithHitRadius(r float64) Option {
	if !positiveFinite(r) {
		panic(panicHitRadiusInvalid)
	}

	return func(o *Options) { o.hitRadius = r }
}

// WithColorBoxFraction sets the handle color sampling box size.
func WithColorBoxFraction(f float64) Option {
	if !positiveFinite(f) || f > 1 {
		panic(panicColorBoxInvalid)
	}

	return func(o *Options) { o.colorBox = f }
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func gatherOptions(user ...Option) Options {
	o := Options{
		handleRadius: DefaultHandleRadius,
		hitRadius:    DefaultHitRadius,
		colorBox:     DefaultColorBoxFraction,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
