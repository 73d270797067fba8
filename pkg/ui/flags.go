package ui

// Layout flag byte layout (wire contract):
//
//	bits 0-1  direction: 00 Row, 01 Column, 10 Absolute, 11 reserved (Column)
//	bits 2-3  alignment: 00 Start, 01 Center, 10 End, 11 SpaceBetween
//	bit 4     wrap
//	bit 5     grow
//	bits 6-7  reserved, ignored
const (
	layoutDirectionMask uint8 = 0x03
	layoutAlignmentMask uint8 = 0x0C
	layoutWrapBit       uint8 = 1 << 4
	layoutGrowBit       uint8 = 1 << 5
)

// Direction is the flow axis of a container.
type Direction int

const (
	DirectionRow Direction = iota
	DirectionColumn
	// DirectionAbsolute disables flow: children take their declared
	// position and size directly.
	DirectionAbsolute
)

func (d Direction) String() string {
	switch d {
	case DirectionRow:
		return "row"
	case DirectionColumn:
		return "column"
	default:
		return "absolute"
	}
}

// Alignment is the packing policy on an axis.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignSpaceBetween
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignSpaceBetween:
		return "space-between"
	default:
		return "start"
	}
}

// LayoutStyle is the decoded form of the packed layout flag byte.
// Decoding happens once at the boundary; the layout engine never
// branches on raw bits.
type LayoutStyle struct {
	Direction Direction
	Alignment Alignment
	Wrap      bool
	Grow      bool
}

// DecodeLayoutFlags decodes the packed layout byte. The reserved
// direction value falls back to Column; reserved high bits are
// ignored.
func DecodeLayoutFlags(b uint8) LayoutStyle {
	var ls LayoutStyle

	switch b & layoutDirectionMask {
	case 0:
		ls.Direction = DirectionRow
	case 1:
		ls.Direction = DirectionColumn
	case 2:
		ls.Direction = DirectionAbsolute
	default:
		ls.Direction = DirectionColumn
	}

	switch (b & layoutAlignmentMask) >> 2 {
	case 0:
		ls.Alignment = AlignStart
	case 1:
		ls.Alignment = AlignCenter
	case 2:
		ls.Alignment = AlignEnd
	default:
		ls.Alignment = AlignSpaceBetween
	}

	ls.Wrap = b&layoutWrapBit != 0
	ls.Grow = b&layoutGrowBit != 0
	return ls
}

// Encode packs the layout style back into the wire byte.
func (ls LayoutStyle) Encode() uint8 {
	var b uint8
	switch ls.Direction {
	case DirectionColumn:
		b |= 1
	case DirectionAbsolute:
		b |= 2
	}
	b |= uint8(ls.Alignment) << 2
	if ls.Wrap {
		b |= layoutWrapBit
	}
	if ls.Grow {
		b |= layoutGrowBit
	}
	return b
}
