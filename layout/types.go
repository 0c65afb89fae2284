// Package layout types: solver options and sentinel errors.
package layout

import "errors"

var (
	// ErrNilGraph indicates New was handed a nil graph.
	ErrNilGraph = errors.New("layout: nil graph")
	// ErrInvalidOptions indicates a meaningless Options field.
	ErrInvalidOptions = errors.New("layout: invalid options")
)

// Options configures the force-directed solver.
//
// Fields:
//   - Width, Height  — canvas dimensions the layout settles into.
//   - Iterations     — fixed annealing budget; alpha decays linearly
//     from 1 to 0 across exactly this many steps.
//   - Padding        — interior margin node coordinates are clamped to.
//   - SpreadFactor   — multiplier (> 1 biases toward a sparse, readable
//     spread) on the ideal spacing k = sqrt(area/(n+1)).
//
// Zero-value fields are not usable; start from NewOptions.
type Options struct {
	Width        float64
	Height       float64
	Iterations   int
	Padding      float64
	SpreadFactor float64
}

// Default solver parameters.
const (
	DefaultWidth      = 800.0
	DefaultHeight     = 600.0
	DefaultIterations = 300
	DefaultPadding    = 20.0
	DefaultSpread     = 1.3
)

// NewOptions returns the documented defaults.
func NewOptions() Options {
	return Options{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Iterations:   DefaultIterations,
		Padding:      DefaultPadding,
		SpreadFactor: DefaultSpread,
	}
}

// validate reports whether the options describe a usable canvas.
func (o Options) validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return ErrInvalidOptions
	case o.Iterations < 1:
		return ErrInvalidOptions
	case o.Padding < 0 || 2*o.Padding >= o.Width || 2*o.Padding >= o.Height:
		return ErrInvalidOptions
	case o.SpreadFactor <= 0:
		return ErrInvalidOptions
	}

	return nil
}
