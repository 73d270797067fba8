package ui

// ElementID identifies an element for the lifetime of its tree.
// Zero is never a valid id; it marks "no element" (e.g. no parent).
type ElementID uint32

// ElementType is the closed tag set plus an open custom range.
// Values at or above customTypeBase are application-defined; callers
// switch on the known constants and treat the rest via IsCustom.
type ElementType uint8

const (
	ElementApp       ElementType = 0x00
	ElementContainer ElementType = 0x01
	ElementText      ElementType = 0x02
	ElementImage     ElementType = 0x03
	ElementButton    ElementType = 0x10
	ElementInput     ElementType = 0x11
	ElementList      ElementType = 0x20
	ElementGrid      ElementType = 0x21

	// customTypeBase is the first application-defined type id.
	customTypeBase ElementType = 0x31
)

// CustomType builds an element type carrying an application-defined
// payload byte.
func CustomType(payload uint8) ElementType {
	return customTypeBase + ElementType(payload)
}

// IsCustom reports whether the type is outside the known tag set.
func (t ElementType) IsCustom() bool {
	return t >= customTypeBase
}

// CustomPayload returns the application payload of a custom type,
// and whether the type is custom at all.
func (t ElementType) CustomPayload() (uint8, bool) {
	if !t.IsCustom() {
		return 0, false
	}
	return uint8(t - customTypeBase), true
}

// InteractionState is the current pointer/focus state of an element.
type InteractionState uint8

const (
	StateNormal InteractionState = iota
	StateHover
	StateActive
	StateFocused
	StateDisabled
)

// CursorKind selects the pointer cursor shown over an element.
type CursorKind uint8

const (
	CursorDefault CursorKind = iota
	CursorPointer
	CursorText
	CursorMove
)

// TextAlign is horizontal text alignment within an element.
type TextAlign uint8

const (
	TextAlignStart TextAlign = iota
	TextAlignCenter
	TextAlignEnd
)

// EventKind identifies an event an element may bind a handler to.
type EventKind uint8

const (
	EventClick EventKind = iota + 1
	EventChange
	EventFocus
	EventBlur
)

// EventBinding names the handler an external event subsystem should
// invoke for one event kind.
type EventBinding struct {
	Kind    EventKind
	Handler string
}

// StateOverride carries property values that an external interaction
// layer applies while the element is in the given state. The core
// cascade does not consume these; they travel with the element so the
// event subsystem can swap them in between passes.
type StateOverride struct {
	State InteractionState
	Props []StyleProperty
}

// Inline visual property presence bits.
const (
	inlineBackground uint8 = 1 << iota
	inlineTextColor
	inlineBorderColor
	inlineBorderWidth
	inlineBorderRadius
)

// InlineStyle holds the element's own visual property overrides with
// explicit presence tracking: a property set to its default value is
// still "set" and still wins over a style-block value.
type InlineStyle struct {
	set uint8

	background   Color
	textColor    Color
	borderColor  Color
	borderWidth  float64
	borderRadius float64
}

func (s *InlineStyle) SetBackground(c Color)    { s.background = c; s.set |= inlineBackground }
func (s *InlineStyle) SetTextColor(c Color)     { s.textColor = c; s.set |= inlineTextColor }
func (s *InlineStyle) SetBorderColor(c Color)   { s.borderColor = c; s.set |= inlineBorderColor }
func (s *InlineStyle) SetBorderWidth(w float64) { s.borderWidth = w; s.set |= inlineBorderWidth }
func (s *InlineStyle) SetBorderRadius(r float64) {
	s.borderRadius = r
	s.set |= inlineBorderRadius
}

func (s *InlineStyle) Background() (Color, bool) {
	return s.background, s.set&inlineBackground != 0
}

func (s *InlineStyle) TextColor() (Color, bool) {
	return s.textColor, s.set&inlineTextColor != 0
}

func (s *InlineStyle) BorderColor() (Color, bool) {
	return s.borderColor, s.set&inlineBorderColor != 0
}

func (s *InlineStyle) BorderWidth() (float64, bool) {
	return s.borderWidth, s.set&inlineBorderWidth != 0
}

func (s *InlineStyle) BorderRadius() (float64, bool) {
	return s.borderRadius, s.set&inlineBorderRadius != 0
}

// IsEmpty reports whether no inline property has been set.
func (s *InlineStyle) IsEmpty() bool { return s.set == 0 }

// Element is one node of the UI tree. The decoder produces elements
// once per loaded document; style and layout passes treat them as an
// immutable snapshot.
type Element struct {
	ID   ElementID
	Type ElementType

	// Parent is zero for the root. Children are in flow/z order;
	// order is significant.
	Parent   ElementID
	Children []ElementID

	// StyleID references a block in the StyleTable; zero means none.
	// A nonzero id that fails to resolve is treated as absent.
	StyleID uint8

	// Declared, unresolved geometry.
	Pos    PositionSpec
	Size   SizeSpec
	Layout LayoutStyle
	Gap    float64

	// Inline visual overrides (cascade layer 3).
	Inline InlineStyle

	Opacity float64
	Visible bool

	// Text content and typography.
	Text       string
	FontSize   float64
	FontBold   bool
	TextAlign  TextAlign

	// Interaction.
	Cursor   CursorKind
	Disabled bool
	State    InteractionState

	// Open-ended extension data.
	CustomProps map[string]string

	// Per-state property overrides and event bindings, consumed by
	// external subsystems between passes.
	StateOverrides []StateOverride
	Events         []EventBinding
}

// NewElement returns an element with the renderable defaults: visible,
// fully opaque, auto-sized and flow-positioned.
func NewElement(id ElementID, typ ElementType) *Element {
	return &Element{
		ID:      id,
		Type:    typ,
		Pos:     AutoPosition(),
		Size:    AutoSize(),
		Opacity: 1,
		Visible: true,
	}
}

// EventHandler returns the bound handler name for the given event
// kind, if any.
func (e *Element) EventHandler(kind EventKind) (string, bool) {
	for _, b := range e.Events {
		if b.Kind == kind {
			return b.Handler, true
		}
	}
	return "", false
}

// CustomProp looks up an application-defined property.
func (e *Element) CustomProp(key string) (string, bool) {
	v, ok := e.CustomProps[key]
	return v, ok
}
