package layout

import "trellis/pkg/ui"

// layoutChildren lays out the ordered children of a container inside
// its resolved content box. The container's own size is definite by
// the time this runs; that is what lets percentage and auto children
// resolve in a single top-down visit.
func (p *pass) layoutChildren(parent *ui.Element, content Rect) {
	children := p.tree.Children(parent.ID)
	if len(children) == 0 {
		return
	}

	if parent.Layout.Direction == ui.DirectionAbsolute {
		p.layoutAbsolute(children, content)
		return
	}

	isRow := parent.Layout.Direction == ui.DirectionRow
	contentSize := Size{Width: content.Width, Height: content.Height}
	mainExtent := mainAxis(isRow, contentSize)
	crossExtent := crossAxis(isRow, contentSize)

	items := p.buildFlexItems(children, contentSize, isRow)
	lines := buildFlexLines(items, mainExtent, parent.Gap, parent.Layout.Wrap)

	lineOffset := 0.0
	for li, line := range lines {
		distributeMainAxis(line, mainExtent, parent.Gap, isRow)
		placeMainAxis(line, mainExtent, parent.Gap, parent.Layout.Alignment)

		// Without wrap the single line owns the whole cross extent;
		// wrapped lines each own their tallest item.
		lineExtent := crossExtent
		if parent.Layout.Wrap && len(lines) > 1 {
			lineExtent = line.CrossSize
		}
		placeCrossAxis(line, lineExtent, lineOffset, parent.Layout.Alignment)

		lineOffset += lineExtent
		if li < len(lines)-1 {
			lineOffset += parent.Gap
		}
	}

	for _, line := range lines {
		for _, item := range line.Items {
			child := item.Element
			var rect Rect
			if isRow {
				rect = Rect{
					X:      content.X + item.MainPos,
					Y:      content.Y + item.CrossPos,
					Width:  item.MainSize,
					Height: item.CrossSize,
				}
			} else {
				rect = Rect{
					X:      content.X + item.CrossPos,
					Y:      content.Y + item.MainPos,
					Width:  item.CrossSize,
					Height: item.MainSize,
				}
			}
			// A declared position overrides the flow-computed
			// coordinate on that axis without displacing siblings.
			if child.Pos.X.IsDefinite() {
				rect.X = content.X + child.Pos.X.ToPixels(content.Width)
			}
			if child.Pos.Y.IsDefinite() {
				rect.Y = content.Y + child.Pos.Y.ToPixels(content.Height)
			}
			p.place(child, rect)
		}
	}
}

// layoutAbsolute places each child directly from its declared
// position and size, with no distribution step.
func (p *pass) layoutAbsolute(children []*ui.Element, content Rect) {
	contentSize := Size{Width: content.Width, Height: content.Height}
	for _, child := range children {
		cb := constraintsFor(child)
		size := p.resolveSize(child, contentSize)
		rect := Rect{
			X:      content.X + resolveCoord(child.Pos.X, content.Width),
			Y:      content.Y + resolveCoord(child.Pos.Y, content.Height),
			Width:  cb.ConstrainWidth(size.Width),
			Height: cb.ConstrainHeight(size.Height),
		}
		p.place(child, rect)
	}
}

// buildFlexItems converts children to transient flex items: resolved
// basis and cross size, grow factor from the child's own grow bit,
// CSS-initial shrink of 1.
func (p *pass) buildFlexItems(children []*ui.Element, contentSize Size, isRow bool) []*FlexItem {
	items := make([]*FlexItem, 0, len(children))
	for _, child := range children {
		size := p.resolveSize(child, contentSize)

		item := &FlexItem{
			Element:     child,
			FlexBasis:   mainAxis(isRow, size),
			FlexShrink:  1,
			Constraints: constraintsFor(child),
			CrossSize:   crossAxis(isRow, size),
		}
		if child.Layout.Grow {
			item.FlexGrow = 1
		}
		items = append(items, item)
	}
	return items
}

// buildFlexLines breaks items into lines. Without wrap everything
// goes on one line and overflow is permitted, not clipped.
func buildFlexLines(items []*FlexItem, mainExtent, gap float64, wrap bool) []*FlexLine {
	if !wrap {
		return []*FlexLine{{Items: items}}
	}

	var lines []*FlexLine
	current := &FlexLine{}
	used := 0.0
	for _, item := range items {
		need := item.FlexBasis
		if len(current.Items) > 0 {
			need += gap
		}
		if used+need > mainExtent && len(current.Items) > 0 {
			lines = append(lines, current)
			current = &FlexLine{}
			used = item.FlexBasis
		} else {
			used += need
		}
		current.Items = append(current.Items, item)
	}
	if len(current.Items) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// distributeMainAxis resolves final main-axis sizes for one line:
// sum the bases, compute free space, distribute it proportionally to
// grow (or remove proportionally to shrink), then clamp each item
// through its own constraint box.
func distributeMainAxis(line *FlexLine, mainExtent, gap float64, isRow bool) {
	totalBasis := 0.0
	totalGrow := 0.0
	totalShrink := 0.0
	for _, item := range line.Items {
		item.MainSize = item.FlexBasis
		totalBasis += item.FlexBasis
		totalGrow += item.FlexGrow
		totalShrink += item.FlexShrink
	}

	gaps := gap * float64(len(line.Items)-1)
	freeSpace := mainExtent - totalBasis - gaps

	if freeSpace > 0 && totalGrow > 0 {
		for _, item := range line.Items {
			if item.FlexGrow > 0 {
				item.MainSize += freeSpace * (item.FlexGrow / totalGrow)
			}
		}
	} else if freeSpace < 0 && totalShrink > 0 {
		for _, item := range line.Items {
			if item.FlexShrink > 0 {
				item.MainSize -= -freeSpace * (item.FlexShrink / totalShrink)
				if item.MainSize < 0 {
					item.MainSize = 0
				}
			}
		}
	}

	line.MainSize = gaps
	line.CrossSize = 0
	for _, item := range line.Items {
		if isRow {
			item.MainSize = item.Constraints.ConstrainWidth(item.MainSize)
			item.CrossSize = item.Constraints.ConstrainHeight(item.CrossSize)
		} else {
			item.MainSize = item.Constraints.ConstrainHeight(item.MainSize)
			item.CrossSize = item.Constraints.ConstrainWidth(item.CrossSize)
		}
		line.MainSize += item.MainSize
		if item.CrossSize > line.CrossSize {
			line.CrossSize = item.CrossSize
		}
	}
}

// placeMainAxis packs a line's items along the main axis. Start packs
// from the content origin, Center and End offset the used extent,
// SpaceBetween spreads leftover space between items only (degenerates
// to Start with one item or less).
func placeMainAxis(line *FlexLine, mainExtent, gap float64, align ui.Alignment) {
	leftover := mainExtent - line.MainSize

	offset := 0.0
	spacing := gap
	switch align {
	case ui.AlignCenter:
		offset = leftover / 2
	case ui.AlignEnd:
		offset = leftover
	case ui.AlignSpaceBetween:
		if len(line.Items) > 1 {
			spacing = gap + leftover/float64(len(line.Items)-1)
		}
	}

	cur := offset
	for _, item := range line.Items {
		item.MainPos = cur
		cur += item.MainSize + spacing
	}
}

// placeCrossAxis aligns each item within the line's cross extent.
// SpaceBetween has nothing to space for a single item and degenerates
// to Start.
func placeCrossAxis(line *FlexLine, lineExtent, lineOffset float64, align ui.Alignment) {
	for _, item := range line.Items {
		switch align {
		case ui.AlignCenter:
			item.CrossPos = lineOffset + (lineExtent-item.CrossSize)/2
		case ui.AlignEnd:
			item.CrossPos = lineOffset + lineExtent - item.CrossSize
		default:
			item.CrossPos = lineOffset
		}
	}
}

func mainAxis(isRow bool, s Size) float64 {
	if isRow {
		return s.Width
	}
	return s.Height
}

func crossAxis(isRow bool, s Size) float64 {
	if isRow {
		return s.Height
	}
	return s.Width
}
