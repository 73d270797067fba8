package ui

// PropertyID is the small integer key of a style-block property.
type PropertyID uint8

// Known style-block property ids (wire contract). Unrecognized ids are
// carried but ignored by the cascade.
const (
	PropBackgroundColor PropertyID = 0x01
	PropTextColor       PropertyID = 0x02
	PropBorderColor     PropertyID = 0x03
	PropBorderWidth     PropertyID = 0x04
	PropBorderRadius    PropertyID = 0x05
)

// PropertyValue is one typed style value. Exactly one field is
// meaningful for a given property id; the cascade picks by id.
type PropertyValue struct {
	Color  Color
	Number float64
}

// StyleProperty pairs a property id with its value.
type StyleProperty struct {
	ID    PropertyID
	Value PropertyValue
}

// Style is a named, shared block of visual properties referenced by
// elements through StyleID.
type Style struct {
	Name  string
	Props []StyleProperty
}

// Lookup returns the last value declared for the given id, if any.
// Last-wins matches how repeated declarations behave on the source
// surface.
func (s *Style) Lookup(id PropertyID) (PropertyValue, bool) {
	var v PropertyValue
	found := false
	for _, p := range s.Props {
		if p.ID == id {
			v = p.Value
			found = true
		}
	}
	return v, found
}

// Set appends a property to the block.
func (s *Style) Set(id PropertyID, v PropertyValue) {
	s.Props = append(s.Props, StyleProperty{ID: id, Value: v})
}

// StyleTable maps style ids (1-based; zero means "no style") to
// style blocks.
type StyleTable struct {
	styles map[uint8]*Style
}

// NewStyleTable returns an empty table.
func NewStyleTable() *StyleTable {
	return &StyleTable{styles: make(map[uint8]*Style)}
}

// Add registers a style block under the given nonzero id. Re-adding
// an id replaces the block.
func (t *StyleTable) Add(id uint8, s *Style) {
	if id == 0 {
		return
	}
	t.styles[id] = s
}

// Lookup resolves a style id. Id zero never resolves.
func (t *StyleTable) Lookup(id uint8) (*Style, bool) {
	if t == nil || id == 0 {
		return nil, false
	}
	s, ok := t.styles[id]
	return s, ok
}

// Len returns the number of registered blocks.
func (t *StyleTable) Len() int { return len(t.styles) }
