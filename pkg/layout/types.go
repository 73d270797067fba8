package layout

import "trellis/pkg/ui"

// Size is a resolved pixel width/height pair.
type Size struct {
	Width  float64
	Height float64
}

// Rect is the final pixel geometry of one element: position and size
// in viewport coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// FlexItem tracks one child during flex resolution. Items are created
// fresh each pass and carry no identity beyond the element they
// describe.
type FlexItem struct {
	Element *ui.Element

	FlexBasis  float64 // resolved main-axis size before grow/shrink
	FlexGrow   float64
	FlexShrink float64

	Constraints ConstraintBox

	MainSize  float64
	CrossSize float64
	MainPos   float64
	CrossPos  float64
}

// FlexLine is one row (or column) of flex items. A container without
// wrap has exactly one line.
type FlexLine struct {
	Items     []*FlexItem
	MainSize  float64 // sum of item main sizes plus gaps
	CrossSize float64 // largest item cross size on the line
}

// Result is the output of one layout pass: definite pixel geometry
// for every element reachable from the root. There is no unresolved
// state.
type Result struct {
	Viewport Size
	Geometry map[ui.ElementID]Rect
}

// RectOf returns the computed geometry for an element. The zero Rect
// is returned for ids outside the laid-out tree.
func (r *Result) RectOf(id ui.ElementID) Rect {
	return r.Geometry[id]
}
