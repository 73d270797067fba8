package layout

import "trellis/pkg/ui"

// Bottom-up content measurement. This pass runs only for elements
// whose declared size is Auto and whose subtree contains at least one
// text leaf: everything else resolves strictly top-down.

// needsMeasurement reports whether the subtree rooted at el contains
// a measurable text leaf.
func (p *pass) needsMeasurement(el *ui.Element) bool {
	if isTextLeaf(el) {
		return true
	}
	for _, child := range p.tree.Children(el.ID) {
		if child.Size.Width.Kind == ui.DimensionAuto || child.Size.Height.Kind == ui.DimensionAuto {
			if p.needsMeasurement(child) {
				return true
			}
		}
	}
	return false
}

func isTextLeaf(el *ui.Element) bool {
	return len(el.Children) == 0 && el.Text != ""
}

// intrinsicSize measures the content-driven size of an element: the
// collaborator's metrics for a text leaf, the aggregated extents of
// the children for a container. avail bounds text wrapping when the
// container's width is already constrained.
func (p *pass) intrinsicSize(el *ui.Element, avail Size) Size {
	if isTextLeaf(el) {
		fontSize := el.FontSize
		if fontSize <= 0 {
			fontSize = defaultFontSize
		}
		maxWidth := 0.0
		if el.Size.Width.IsDefinite() {
			maxWidth = el.Size.Width.ToPixels(avail.Width)
		}
		m := p.engine.measurer.MeasureText(el.Text, fontSize, maxWidth)
		return Size{Width: m.Width, Height: m.Height}
	}

	children := p.tree.Children(el.ID)
	if len(children) == 0 {
		// Auto leaf with no content: nothing to measure, falls back
		// to filling the parent.
		return avail
	}

	isRow := el.Layout.Direction == ui.DirectionRow
	var main, cross float64
	for i, child := range children {
		cs := p.childIntrinsicContribution(child, avail)
		if el.Layout.Direction == ui.DirectionAbsolute {
			// Absolute containers are as big as their farthest child
			// extent.
			if cs.Width > main {
				main = cs.Width
			}
			if cs.Height > cross {
				cross = cs.Height
			}
			continue
		}
		main += mainAxis(isRow, cs)
		if i > 0 {
			main += el.Gap
		}
		if c := crossAxis(isRow, cs); c > cross {
			cross = c
		}
	}

	if el.Layout.Direction == ui.DirectionAbsolute {
		return Size{Width: main, Height: cross}
	}
	if isRow {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// childIntrinsicContribution is the size one child adds to its
// parent's intrinsic extent: declared pixels where definite,
// recursive intrinsic measurement where Auto and measurable, zero for
// parent-relative dimensions (the parent's own size is not known yet).
func (p *pass) childIntrinsicContribution(child *ui.Element, avail Size) Size {
	var measured Size
	needs := (child.Size.Width.Kind == ui.DimensionAuto || child.Size.Height.Kind == ui.DimensionAuto) &&
		p.needsMeasurement(child)
	if needs {
		measured = p.intrinsicSize(child, avail)
	}

	return Size{
		Width:  intrinsicAxis(child.Size.Width, measured.Width),
		Height: intrinsicAxis(child.Size.Height, measured.Height),
	}
}

func intrinsicAxis(d ui.Dimension, measured float64) float64 {
	switch d.Kind {
	case ui.DimensionPixels, ui.DimensionMinPixels, ui.DimensionMaxPixels:
		return d.Value
	case ui.DimensionPercentage:
		return 0
	default:
		return measured
	}
}
