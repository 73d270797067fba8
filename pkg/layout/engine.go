package layout

import (
	"go.uber.org/zap"

	"trellis/pkg/ui"
)

// defaultFontSize is used when an element declares no font size.
const defaultFontSize = 16.0

// Engine computes pixel geometry for a tree snapshot. One Layout call
// is one complete pass: synchronous, non-suspending, no partial
// results. The engine itself holds no per-pass state and may be
// reused across passes.
type Engine struct {
	measurer TextMeasurer
	log      *zap.Logger
}

// NewEngine returns an engine with the estimate measurer and no
// logging.
func NewEngine() *Engine {
	return &Engine{
		measurer: EstimateMeasurer{},
		log:      zap.NewNop(),
	}
}

// SetMeasurer installs the intrinsic-measurement collaborator used
// for auto-sized text leaves. A nil measurer restores the estimate
// fallback; layout never runs without one.
func (e *Engine) SetMeasurer(m TextMeasurer) {
	if m == nil {
		m = EstimateMeasurer{}
	}
	e.measurer = m
}

// SetLogger installs a logger for pass tracing. Nil disables tracing.
func (e *Engine) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	e.log = log
}

// Layout resolves geometry for every element reachable from the root
// against the given viewport. Every element ends the pass with a
// definite pixel position and size.
func (e *Engine) Layout(tree *ui.Tree, viewport Size) *Result {
	res := &Result{
		Viewport: viewport,
		Geometry: make(map[ui.ElementID]Rect, tree.Len()),
	}
	root := tree.Root()
	if root == nil {
		return res
	}

	p := &pass{
		engine:   e,
		tree:     tree,
		result:   res,
		viewport: Definite(viewport.Width, viewport.Height),
	}

	size := p.resolveSize(root, viewport)
	size.Width = p.viewport.ConstrainWidth(constraintsFor(root).ConstrainWidth(size.Width))
	size.Height = p.viewport.ConstrainHeight(constraintsFor(root).ConstrainHeight(size.Height))

	rect := Rect{
		X:      resolveCoord(root.Pos.X, viewport.Width),
		Y:      resolveCoord(root.Pos.Y, viewport.Height),
		Width:  size.Width,
		Height: size.Height,
	}
	p.place(root, rect)

	e.log.Debug("layout pass complete",
		zap.Int("elements", len(res.Geometry)),
		zap.Float64("viewport_w", viewport.Width),
		zap.Float64("viewport_h", viewport.Height),
	)
	return res
}

// pass carries the per-invocation state of one layout pass.
type pass struct {
	engine   *Engine
	tree     *ui.Tree
	result   *Result
	viewport ConstraintBox
}

// place records the element's final rect and lays out its children
// inside it.
func (p *pass) place(el *ui.Element, rect Rect) {
	if rect.Width < 0 {
		rect.Width = 0
	}
	if rect.Height < 0 {
		rect.Height = 0
	}
	p.result.Geometry[el.ID] = rect
	p.layoutChildren(el, rect)
}

// resolveCoord resolves a declared position component; Auto means the
// flow origin, not "fill".
func resolveCoord(d ui.Dimension, parentExtent float64) float64 {
	if d.Kind == ui.DimensionAuto {
		return 0
	}
	return d.ToPixels(parentExtent)
}

// resolveSize resolves an element's declared size against its
// parent's resolved content size. Auto fills the parent unless the
// subtree carries measurable content, in which case the bottom-up
// intrinsic size is substituted.
func (p *pass) resolveSize(el *ui.Element, parent Size) Size {
	wAuto := el.Size.Width.Kind == ui.DimensionAuto
	hAuto := el.Size.Height.Kind == ui.DimensionAuto

	var measured Size
	measurable := false
	if (wAuto || hAuto) && p.needsMeasurement(el) {
		measured = p.intrinsicSize(el, parent)
		measurable = true
	}

	out := Size{
		Width:  el.Size.Width.ToPixels(parent.Width),
		Height: el.Size.Height.ToPixels(parent.Height),
	}
	if wAuto && measurable {
		out.Width = measured.Width
	}
	if hAuto && measurable {
		out.Height = measured.Height
	}
	return out
}
