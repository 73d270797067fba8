package layout

import (
	"testing"

	"trellis/pkg/ui"
)

// gridMeasurer reports 10px per rune and a flat 20px height, so
// expected sizes stay readable in tests.
type gridMeasurer struct{}

func (gridMeasurer) MeasureText(text string, fontSize float64, maxWidth float64) TextMetrics {
	return TextMetrics{
		Width:      float64(len([]rune(text))) * 10,
		Height:     20,
		Baseline:   16,
		LineHeight: 20,
	}
}

func TestIntrinsic_TextLeafUsesMeasurer(t *testing.T) {
	b := newTreeBuilder()
	b.add(0, ui.ElementApp, func(e *ui.Element) {
		e.Size = ui.SizeSpec{Width: ui.Pixels(500), Height: ui.Pixels(500)}
		e.Layout = ui.LayoutStyle{Direction: ui.DirectionRow}
	})
	b.add(1, ui.ElementText, func(e *ui.Element) { e.Text = "hello" })
	tree := b.build(t)

	eng := NewEngine()
	eng.SetMeasurer(gridMeasurer{})
	res := eng.Layout(tree, Size{Width: 800, Height: 600})

	checkRect(t, res, 2, 0, 0, 50, 20)
}

func TestIntrinsic_AutoContainerAggregatesChildren(t *testing.T) {
	// Auto-sized Row container holding two text leaves: width is the
	// sum of the measured widths plus the gap, height the max.
	b := newTreeBuilder()
	b.add(0, ui.ElementApp, func(e *ui.Element) {
		e.Size = ui.SizeSpec{Width: ui.Pixels(500), Height: ui.Pixels(500)}
		e.Layout = ui.LayoutStyle{Direction: ui.DirectionColumn}
	})
	b.add(1, ui.ElementContainer, func(e *ui.Element) {
		e.Layout = ui.LayoutStyle{Direction: ui.DirectionRow}
		e.Gap = 5
	})
	b.add(2, ui.ElementText, func(e *ui.Element) { e.Text = "ab" })
	b.add(2, ui.ElementText, func(e *ui.Element) { e.Text = "wxyz" })
	tree := b.build(t)

	eng := NewEngine()
	eng.SetMeasurer(gridMeasurer{})
	res := eng.Layout(tree, Size{Width: 800, Height: 600})

	// 20 + 5 + 40 wide, 20 tall.
	approx(t, "container width", res.RectOf(2).Width, 65)
	approx(t, "container height", res.RectOf(2).Height, 20)
	checkRect(t, res, 3, 0, 0, 20, 20)
	checkRect(t, res, 4, 25, 0, 40, 20)
}

func TestIntrinsic_ColumnContainerStacksMeasurements(t *testing.T) {
	b := newTreeBuilder()
	b.add(0, ui.ElementApp, func(e *ui.Element) {
		e.Size = ui.SizeSpec{Width: ui.Pixels(500), Height: ui.Pixels(500)}
	})
	b.add(1, ui.ElementContainer, func(e *ui.Element) {
		e.Layout = ui.LayoutStyle{Direction: ui.DirectionColumn}
	})
	b.add(2, ui.ElementText, func(e *ui.Element) { e.Text = "one" })
	b.add(2, ui.ElementText, func(e *ui.Element) { e.Text = "three" })
	tree := b.build(t)

	eng := NewEngine()
	eng.SetMeasurer(gridMeasurer{})
	res := eng.Layout(tree, Size{Width: 800, Height: 600})

	approx(t, "container width", res.RectOf(2).Width, 50) // widest child
	approx(t, "container height", res.RectOf(2).Height, 40)
}

func TestIntrinsic_FixedChildContributesDeclaredPixels(t *testing.T) {
	b := newTreeBuilder()
	b.add(0, ui.ElementApp, func(e *ui.Element) {
		e.Size = ui.SizeSpec{Width: ui.Pixels(500), Height: ui.Pixels(500)}
	})
	b.add(1, ui.ElementContainer, func(e *ui.Element) {
		e.Layout = ui.LayoutStyle{Direction: ui.DirectionRow}
	})
	b.add(2, ui.ElementText, func(e *ui.Element) { e.Text = "abc" })
	b.add(2, ui.ElementContainer, func(e *ui.Element) {
		e.Size = ui.SizeSpec{Width: ui.Pixels(70), Height: ui.Pixels(10)}
	})
	tree := b.build(t)

	eng := NewEngine()
	eng.SetMeasurer(gridMeasurer{})
	res := eng.Layout(tree, Size{Width: 800, Height: 600})

	approx(t, "container width", res.RectOf(2).Width, 100) // 30 text + 70 fixed
	approx(t, "container height", res.RectOf(2).Height, 20)
}

func TestEstimateMeasurer_Fallback(t *testing.T) {
	m := EstimateMeasurer{}

	got := m.MeasureText("abcd", 10, 0)
	approx(t, "width", got.Width, 24) // 4 chars x 0.6em
	approx(t, "height", got.Height, 12)

	// Bounded width wraps: 24px of text in a 10px column is 3 lines.
	got = m.MeasureText("abcd", 10, 10)
	approx(t, "wrapped width", got.Width, 10)
	approx(t, "wrapped height", got.Height, 36)
}

func TestEngine_NilMeasurerRestoresEstimate(t *testing.T) {
	eng := NewEngine()
	eng.SetMeasurer(nil)

	b := newTreeBuilder()
	b.add(0, ui.ElementApp, func(e *ui.Element) {
		e.Size = ui.SizeSpec{Width: ui.Pixels(500), Height: ui.Pixels(500)}
	})
	b.add(1, ui.ElementText, func(e *ui.Element) {
		e.Text = "x"
		e.FontSize = 10
	})
	tree := b.build(t)

	res := eng.Layout(tree, Size{Width: 800, Height: 600})
	approx(t, "estimated width", res.RectOf(2).Width, 6)
	approx(t, "estimated height", res.RectOf(2).Height, 12)
}
