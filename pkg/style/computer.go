package style

import (
	"errors"
	"fmt"
	"sync/atomic"

	"trellis/pkg/ui"
)

// Structural errors. These only surface for trees that bypassed
// decode-time validation; a validated tree never produces them.
var (
	ErrUnknownElement = errors.New("style: unknown element id")
	ErrAncestryCycle  = errors.New("style: cycle in parent chain")
)

// cascadeInput is the per-element snapshot the cascade reads: parent
// link, style reference, and inline overrides, copied out of the tree
// at construction so later tree mutation is never observed.
type cascadeInput struct {
	parent  ui.ElementID
	styleID uint8
	inline  ui.InlineStyle
}

var epochCounter atomic.Uint64

// Computer resolves one Computed per element and memoizes the result
// by element id. It holds a private copy of the cascade inputs taken
// at construction: results stay consistent within a pass regardless
// of later mutation of the source tree or style table.
//
// Staleness is a caller contract. After mutating the tree between
// passes, build a new Computer; its Epoch distinguishes the two
// generations of results. A Computer is not safe for concurrent use;
// parallel workers each own their own instance.
type Computer struct {
	inputs map[ui.ElementID]cascadeInput
	styles map[uint8]cascadeStyle
	cache  map[ui.ElementID]Computed
	epoch  uint64
}

// cascadeStyle is the resolved per-property view of one style block,
// extracted once so Compute never re-scans property lists.
type cascadeStyle struct {
	background   ui.Color
	textColor    ui.Color
	borderColor  ui.Color
	borderWidth  float64
	borderRadius float64

	hasBackground   bool
	hasTextColor    bool
	hasBorderColor  bool
	hasBorderWidth  bool
	hasBorderRadius bool
}

// NewComputer snapshots the cascade-relevant state of the tree and
// style table. Unrecognized style property ids are dropped here,
// silently.
func NewComputer(tree *ui.Tree, styles *ui.StyleTable) *Computer {
	c := &Computer{
		inputs: make(map[ui.ElementID]cascadeInput, tree.Len()),
		styles: make(map[uint8]cascadeStyle),
		cache:  make(map[ui.ElementID]Computed, tree.Len()),
		epoch:  epochCounter.Add(1),
	}

	for _, e := range tree.All() {
		c.snapshotElement(e, styles)
	}
	return c
}

func (c *Computer) snapshotElement(e *ui.Element, styles *ui.StyleTable) {
	c.inputs[e.ID] = cascadeInput{
		parent:  e.Parent,
		styleID: e.StyleID,
		inline:  e.Inline,
	}
	if e.StyleID == 0 {
		return
	}
	if _, done := c.styles[e.StyleID]; done {
		return
	}
	block, ok := styles.Lookup(e.StyleID)
	if !ok {
		// Unresolved style id: treated as absent (never an error).
		return
	}
	var cs cascadeStyle
	if v, ok := block.Lookup(ui.PropBackgroundColor); ok {
		cs.background, cs.hasBackground = v.Color, true
	}
	if v, ok := block.Lookup(ui.PropTextColor); ok {
		cs.textColor, cs.hasTextColor = v.Color, true
	}
	if v, ok := block.Lookup(ui.PropBorderColor); ok {
		cs.borderColor, cs.hasBorderColor = v.Color, true
	}
	if v, ok := block.Lookup(ui.PropBorderWidth); ok {
		cs.borderWidth, cs.hasBorderWidth = v.Number, true
	}
	if v, ok := block.Lookup(ui.PropBorderRadius); ok {
		cs.borderRadius, cs.hasBorderRadius = v.Number, true
	}
	c.styles[e.StyleID] = cs
}

// Epoch identifies the snapshot generation this computer resolves
// against. Two computers built from the same tree at different times
// carry different epochs.
func (c *Computer) Epoch() uint64 { return c.epoch }

// Compute resolves the style of one element, walking its ancestor
// chain iteratively. A cache hit short-circuits without touching the
// chain. The only failure modes are structural: an id missing from
// the snapshot or a cyclic parent chain.
func (c *Computer) Compute(id ui.ElementID) (Computed, error) {
	if got, ok := c.cache[id]; ok {
		return got, nil
	}
	if _, ok := c.inputs[id]; !ok {
		return Computed{}, fmt.Errorf("%w: %d", ErrUnknownElement, id)
	}

	// Collect the uncached portion of the ancestor chain, leaf first.
	var chain []ui.ElementID
	seen := make(map[ui.ElementID]bool)
	base := Default()
	haveBase := false
	for cur := id; cur != 0; {
		if seen[cur] {
			return Computed{}, fmt.Errorf("%w: via element %d", ErrAncestryCycle, id)
		}
		seen[cur] = true

		if got, ok := c.cache[cur]; ok {
			base = got
			haveBase = true
			break
		}
		in, ok := c.inputs[cur]
		if !ok {
			return Computed{}, fmt.Errorf("%w: %d (parent link)", ErrUnknownElement, cur)
		}
		chain = append(chain, cur)
		cur = in.parent
	}

	// Resolve root-most first so each element's parent is computed
	// (and cached) before the element itself.
	for i := len(chain) - 1; i >= 0; i-- {
		cur := chain[i]
		in := c.inputs[cur]

		var out Computed
		if haveBase {
			out = inheritInto(base)
		} else {
			out = Default()
		}
		c.applyStyleBlock(&out, in.styleID)
		applyInline(&out, &in.inline)

		c.cache[cur] = out
		base = out
		haveBase = true
	}
	return base, nil
}

func (c *Computer) applyStyleBlock(out *Computed, styleID uint8) {
	cs, ok := c.styles[styleID]
	if styleID == 0 || !ok {
		return
	}
	if cs.hasBackground {
		out.Background = cs.background
	}
	if cs.hasTextColor {
		out.TextColor = cs.textColor
	}
	if cs.hasBorderColor {
		out.BorderColor = cs.borderColor
	}
	if cs.hasBorderWidth {
		out.BorderWidth = cs.borderWidth
	}
	if cs.hasBorderRadius {
		out.BorderRadius = cs.borderRadius
	}
}

// applyInline runs last so an inline value always wins over the style
// block, even when set to the property's default.
func applyInline(out *Computed, in *ui.InlineStyle) {
	if v, ok := in.Background(); ok {
		out.Background = v
	}
	if v, ok := in.TextColor(); ok {
		out.TextColor = v
	}
	if v, ok := in.BorderColor(); ok {
		out.BorderColor = v
	}
	if v, ok := in.BorderWidth(); ok {
		out.BorderWidth = v
	}
	if v, ok := in.BorderRadius(); ok {
		out.BorderRadius = v
	}
}

// ComputeAll resolves every element captured in the snapshot and
// returns the results keyed by id. Structural errors abort the pass.
func (c *Computer) ComputeAll() (map[ui.ElementID]Computed, error) {
	out := make(map[ui.ElementID]Computed, len(c.inputs))
	for id := range c.inputs {
		cs, err := c.Compute(id)
		if err != nil {
			return nil, err
		}
		out[id] = cs
	}
	return out, nil
}
