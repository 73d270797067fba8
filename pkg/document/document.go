// Package document loads a declarative UI document from its textual
// (JSON) form into a validated element tree and style table. This is
// the configuration surface the dimension literal grammar exists for;
// decoding the compact binary form is a separate concern outside this
// module.
package document

import (
	"fmt"
	"io"
	"os"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"trellis/pkg/ui"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is a loaded, validated UI document: the immutable inputs
// of one computation pass.
type Document struct {
	Tree   *ui.Tree
	Styles *ui.StyleTable

	// Viewport is the document's declared root area; zero when the
	// caller supplies its own.
	ViewportWidth  float64
	ViewportHeight float64
}

type docDTO struct {
	Viewport *viewportDTO `json:"viewport"`
	Styles   []styleDTO   `json:"styles"`
	Root     *elementDTO  `json:"root"`
}

type viewportDTO struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type styleDTO struct {
	Name  string            `json:"name"`
	Props map[string]string `json:"props"`
}

type elementDTO struct {
	Type   string `json:"type"`
	Style  string `json:"style"`
	X      string `json:"x"`
	Y      string `json:"y"`
	Width  string `json:"width"`
	Height string `json:"height"`

	Direction string  `json:"direction"`
	Alignment string  `json:"alignment"`
	Wrap      bool    `json:"wrap"`
	Grow      bool    `json:"grow"`
	Gap       float64 `json:"gap"`

	Background   *string  `json:"background"`
	TextColor    *string  `json:"text_color"`
	BorderColor  *string  `json:"border_color"`
	BorderWidth  *float64 `json:"border_width"`
	BorderRadius *float64 `json:"border_radius"`

	Text     string  `json:"text"`
	FontSize float64 `json:"font_size"`
	Bold     bool    `json:"bold"`

	Custom map[string]string `json:"custom"`
	Events map[string]string `json:"events"`

	Children []*elementDTO `json:"children"`
}

// Load reads a document from r.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("document: read: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a document from disk.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Parse decodes, assembles and validates a document. Malformed
// dimension literals degrade to Auto per the grammar; structural
// problems (no root, bad colors, unknown style names) are errors.
func Parse(data []byte) (*Document, error) {
	var dto docDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("document: decode: %w", err)
	}
	if dto.Root == nil {
		return nil, fmt.Errorf("document: missing root element")
	}

	doc := &Document{
		Tree:   ui.NewTree(),
		Styles: ui.NewStyleTable(),
	}
	if dto.Viewport != nil {
		doc.ViewportWidth = dto.Viewport.Width
		doc.ViewportHeight = dto.Viewport.Height
	}

	styleIDs := make(map[string]uint8, len(dto.Styles))
	for i, s := range dto.Styles {
		if i >= 255 {
			return nil, fmt.Errorf("document: too many styles (max 255)")
		}
		block, err := buildStyle(s)
		if err != nil {
			return nil, err
		}
		id := uint8(i + 1)
		doc.Styles.Add(id, block)
		styleIDs[s.Name] = id
	}

	nextID := ui.ElementID(1)
	var build func(dto *elementDTO, parent ui.ElementID) (ui.ElementID, error)
	build = func(dto *elementDTO, parent ui.ElementID) (ui.ElementID, error) {
		el, err := buildElement(dto, nextID, styleIDs)
		if err != nil {
			return 0, err
		}
		nextID++
		el.Parent = parent
		doc.Tree.Add(el)
		for _, childDTO := range dto.Children {
			childID, err := build(childDTO, el.ID)
			if err != nil {
				return 0, err
			}
			el.Children = append(el.Children, childID)
		}
		return el.ID, nil
	}
	if _, err := build(dto.Root, 0); err != nil {
		return nil, err
	}

	if err := doc.Tree.Validate(); err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	return doc, nil
}

// styleProps maps the textual property keys of a style block to wire
// property ids.
var styleProps = map[string]ui.PropertyID{
	"background_color": ui.PropBackgroundColor,
	"text_color":       ui.PropTextColor,
	"border_color":     ui.PropBorderColor,
	"border_width":     ui.PropBorderWidth,
	"border_radius":    ui.PropBorderRadius,
}

func buildStyle(dto styleDTO) (*ui.Style, error) {
	if dto.Name == "" {
		return nil, fmt.Errorf("document: style with empty name")
	}
	block := &ui.Style{Name: dto.Name}
	for key, raw := range dto.Props {
		id, known := styleProps[key]
		if !known {
			// Unknown property keys are carried nowhere: ignored
			// without error, like unknown ids on the wire.
			continue
		}
		var v ui.PropertyValue
		switch id {
		case ui.PropBorderWidth, ui.PropBorderRadius:
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("document: style %q: %s: %w", dto.Name, key, err)
			}
			v.Number = n
		default:
			c, err := ui.ParseColor(raw)
			if err != nil {
				return nil, fmt.Errorf("document: style %q: %w", dto.Name, err)
			}
			v.Color = c
		}
		block.Set(id, v)
	}
	return block, nil
}

var elementTypes = map[string]ui.ElementType{
	"app":       ui.ElementApp,
	"container": ui.ElementContainer,
	"text":      ui.ElementText,
	"image":     ui.ElementImage,
	"button":    ui.ElementButton,
	"input":     ui.ElementInput,
	"list":      ui.ElementList,
	"grid":      ui.ElementGrid,
}

var eventKinds = map[string]ui.EventKind{
	"click":  ui.EventClick,
	"change": ui.EventChange,
	"focus":  ui.EventFocus,
	"blur":   ui.EventBlur,
}

func buildElement(dto *elementDTO, id ui.ElementID, styleIDs map[string]uint8) (*ui.Element, error) {
	typ, ok := elementTypes[dto.Type]
	if !ok {
		return nil, fmt.Errorf("document: element %d: unknown type %q", id, dto.Type)
	}
	el := ui.NewElement(id, typ)

	if dto.Style != "" {
		styleID, ok := styleIDs[dto.Style]
		if !ok {
			return nil, fmt.Errorf("document: element %d: unknown style %q", id, dto.Style)
		}
		el.StyleID = styleID
	}

	el.Pos = ui.PositionSpec{X: ui.ParseDimension(dto.X), Y: ui.ParseDimension(dto.Y)}
	el.Size = ui.SizeSpec{Width: ui.ParseDimension(dto.Width), Height: ui.ParseDimension(dto.Height)}

	el.Layout = ui.LayoutStyle{Wrap: dto.Wrap, Grow: dto.Grow}
	switch dto.Direction {
	case "", "row":
		el.Layout.Direction = ui.DirectionRow
	case "column":
		el.Layout.Direction = ui.DirectionColumn
	case "absolute":
		el.Layout.Direction = ui.DirectionAbsolute
	default:
		return nil, fmt.Errorf("document: element %d: unknown direction %q", id, dto.Direction)
	}
	switch dto.Alignment {
	case "", "start":
		el.Layout.Alignment = ui.AlignStart
	case "center":
		el.Layout.Alignment = ui.AlignCenter
	case "end":
		el.Layout.Alignment = ui.AlignEnd
	case "space-between":
		el.Layout.Alignment = ui.AlignSpaceBetween
	default:
		return nil, fmt.Errorf("document: element %d: unknown alignment %q", id, dto.Alignment)
	}
	el.Gap = dto.Gap

	if err := applyInline(el, dto); err != nil {
		return nil, fmt.Errorf("document: element %d: %w", id, err)
	}

	el.Text = dto.Text
	el.FontSize = dto.FontSize
	el.FontBold = dto.Bold
	el.CustomProps = dto.Custom

	for name, handler := range dto.Events {
		kind, ok := eventKinds[name]
		if !ok {
			return nil, fmt.Errorf("document: element %d: unknown event %q", id, name)
		}
		el.Events = append(el.Events, ui.EventBinding{Kind: kind, Handler: handler})
	}
	return el, nil
}

// applyInline maps present JSON keys to inline overrides. Absent keys
// stay unset in the presence mask.
func applyInline(el *ui.Element, dto *elementDTO) error {
	if dto.Background != nil {
		c, err := ui.ParseColor(*dto.Background)
		if err != nil {
			return err
		}
		el.Inline.SetBackground(c)
	}
	if dto.TextColor != nil {
		c, err := ui.ParseColor(*dto.TextColor)
		if err != nil {
			return err
		}
		el.Inline.SetTextColor(c)
	}
	if dto.BorderColor != nil {
		c, err := ui.ParseColor(*dto.BorderColor)
		if err != nil {
			return err
		}
		el.Inline.SetBorderColor(c)
	}
	if dto.BorderWidth != nil {
		el.Inline.SetBorderWidth(*dto.BorderWidth)
	}
	if dto.BorderRadius != nil {
		el.Inline.SetBorderRadius(*dto.BorderRadius)
	}
	return nil
}
