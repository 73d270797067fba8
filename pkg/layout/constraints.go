package layout

import (
	"math"

	"trellis/pkg/ui"
)

// ConstraintBox is a min/max pixel envelope used to clamp resolved
// sizes before geometry is finalized. The definite flags record
// whether a caller-supplied upper bound is a hard limit or merely
// "unbounded".
type ConstraintBox struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64

	WidthDefinite  bool
	HeightDefinite bool
}

// Unbounded returns a constraint box that clamps nothing.
func Unbounded() ConstraintBox {
	return ConstraintBox{
		MaxWidth:  math.Inf(1),
		MaxHeight: math.Inf(1),
	}
}

// Definite returns a constraint box with hard upper bounds on both
// axes, e.g. the viewport at the top of a pass.
func Definite(maxWidth, maxHeight float64) ConstraintBox {
	return ConstraintBox{
		MaxWidth:       maxWidth,
		MaxHeight:      maxHeight,
		WidthDefinite:  true,
		HeightDefinite: true,
	}
}

// ConstrainWidth clamps v into [MinWidth, MaxWidth].
func (cb ConstraintBox) ConstrainWidth(v float64) float64 {
	return clamp(v, cb.MinWidth, cb.MaxWidth)
}

// ConstrainHeight clamps v into [MinHeight, MaxHeight].
func (cb ConstraintBox) ConstrainHeight(v float64) float64 {
	return clamp(v, cb.MinHeight, cb.MaxHeight)
}

// IsWidthConstrained reports whether an upper width bound narrower
// than infinite applies.
func (cb ConstraintBox) IsWidthConstrained() bool {
	return !math.IsInf(cb.MaxWidth, 1)
}

// IsHeightConstrained reports whether an upper height bound narrower
// than infinite applies.
func (cb ConstraintBox) IsHeightConstrained() bool {
	return !math.IsInf(cb.MaxHeight, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// constraintsFor derives an element's own constraint box from its
// declared dimensions: MinPixels contributes a lower bound, MaxPixels
// an upper bound.
func constraintsFor(e *ui.Element) ConstraintBox {
	cb := Unbounded()
	switch e.Size.Width.Kind {
	case ui.DimensionMinPixels:
		cb.MinWidth = e.Size.Width.Value
	case ui.DimensionMaxPixels:
		cb.MaxWidth = e.Size.Width.Value
		cb.WidthDefinite = true
	}
	switch e.Size.Height.Kind {
	case ui.DimensionMinPixels:
		cb.MinHeight = e.Size.Height.Value
	case ui.DimensionMaxPixels:
		cb.MaxHeight = e.Size.Height.Value
		cb.HeightDefinite = true
	}
	return cb
}
