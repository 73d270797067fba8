package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// DimensionKind selects how a declared dimension resolves to pixels.
type DimensionKind int

const (
	// DimensionAuto fills the parent unless a higher layer substitutes
	// an intrinsic (content-measured) size.
	DimensionAuto DimensionKind = iota
	// DimensionPixels is an absolute pixel value.
	DimensionPixels
	// DimensionPercentage is a fraction of the parent size (0..1).
	DimensionPercentage
	// DimensionMinPixels is a pixel value that also acts as a lower
	// bound during constraint clamping.
	DimensionMinPixels
	// DimensionMaxPixels is a pixel value that also acts as an upper
	// bound during constraint clamping.
	DimensionMaxPixels
)

// Dimension is one declared layout length: pixels, a parent-relative
// fraction, or auto. The zero value is Auto.
type Dimension struct {
	Kind  DimensionKind
	Value float64
}

func Auto() Dimension                { return Dimension{Kind: DimensionAuto} }
func Pixels(px float64) Dimension    { return Dimension{Kind: DimensionPixels, Value: px} }
func Percentage(r float64) Dimension { return Dimension{Kind: DimensionPercentage, Value: r} }
func MinPixels(px float64) Dimension { return Dimension{Kind: DimensionMinPixels, Value: px} }
func MaxPixels(px float64) Dimension { return Dimension{Kind: DimensionMaxPixels, Value: px} }

// ToPixels resolves the dimension against the parent's resolved size.
// Auto fills the parent; intrinsic sizing, where it applies, is
// substituted by the layout engine before this point.
func (d Dimension) ToPixels(parentSize float64) float64 {
	switch d.Kind {
	case DimensionPixels, DimensionMinPixels, DimensionMaxPixels:
		return d.Value
	case DimensionPercentage:
		return d.Value * parentSize
	default:
		return parentSize
	}
}

// IsDefinite reports whether the dimension resolves without content
// measurement. Only Auto is indefinite.
func (d Dimension) IsDefinite() bool {
	return d.Kind != DimensionAuto
}

// DependsOnParent reports whether resolving the dimension requires the
// parent's size to already be known. This drives resolution ordering:
// definite pixel values resolve immediately, percentage and auto wait
// for the parent.
func (d Dimension) DependsOnParent() bool {
	return d.Kind == DimensionPercentage || d.Kind == DimensionAuto
}

func (d Dimension) String() string {
	switch d.Kind {
	case DimensionPixels:
		return fmt.Sprintf("%gpx", d.Value)
	case DimensionPercentage:
		return fmt.Sprintf("%g%%", d.Value*100)
	case DimensionMinPixels:
		return fmt.Sprintf("min %gpx", d.Value)
	case DimensionMaxPixels:
		return fmt.Sprintf("max %gpx", d.Value)
	default:
		return "auto"
	}
}

// ParseDimension parses a dimension literal from a configuration
// surface: "auto", "<num>%", "<num>px", or a bare number (pixels).
// Anything malformed degrades to Auto — layout never hard-fails on
// bad input.
func ParseDimension(s string) Dimension {
	s = strings.TrimSpace(s)
	if s == "auto" {
		return Auto()
	}
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return Auto()
		}
		return Percentage(v / 100)
	}
	num := strings.TrimSuffix(s, "px")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Auto()
	}
	return Pixels(v)
}

// SizeSpec is the declared width/height pair of an element.
type SizeSpec struct {
	Width  Dimension
	Height Dimension
}

// AutoSize is a SizeSpec with both axes Auto.
func AutoSize() SizeSpec {
	return SizeSpec{Width: Auto(), Height: Auto()}
}

// PositionSpec is the declared x/y pair of an element.
type PositionSpec struct {
	X Dimension
	Y Dimension
}

// AutoPosition is a PositionSpec with both axes Auto (flow-placed).
func AutoPosition() PositionSpec {
	return PositionSpec{X: Auto(), Y: Auto()}
}
