// Package style resolves the final visual properties of each element
// through the three-layer cascade: inherited values, the referenced
// style block, then inline overrides.
package style

import "trellis/pkg/ui"

// Computed is the fully resolved, renderer-ready visual style of one
// element. Immutable once produced for a tree snapshot.
type Computed struct {
	Background   ui.Color
	TextColor    ui.Color
	BorderColor  ui.Color
	BorderWidth  float64
	BorderRadius float64
}

// Default returns the global default style: transparent background,
// opaque black text, transparent zero-width border. This seeds the
// cascade for a parentless element.
func Default() Computed {
	return Computed{
		Background: ui.Transparent,
		TextColor:  ui.Black,
	}
}

// inheritInto seeds a child's base from its parent's resolved style.
// Only text color inherits; background and border always reset.
func inheritInto(parent Computed) Computed {
	c := Default()
	c.TextColor = parent.TextColor
	return c
}
