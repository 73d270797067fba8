package layout

import (
	"testing"

	"trellis/pkg/ui"
)

func TestConstraintBox_Clamp(t *testing.T) {
	cb := ConstraintBox{MinWidth: 50, MaxWidth: 200, MinHeight: 10, MaxHeight: 80}

	cases := []struct {
		in, want float64
	}{
		{0, 50},
		{50, 50},
		{125, 125},
		{200, 200},
		{999, 200},
	}
	for _, c := range cases {
		if got := cb.ConstrainWidth(c.in); got != c.want {
			t.Errorf("ConstrainWidth(%g) = %g, want %g", c.in, got, c.want)
		}
	}
	if got := cb.ConstrainHeight(100); got != 80 {
		t.Errorf("ConstrainHeight(100) = %g, want 80", got)
	}
}

func TestConstraintBox_Unbounded(t *testing.T) {
	cb := Unbounded()
	if cb.IsWidthConstrained() || cb.IsHeightConstrained() {
		t.Error("unbounded box must not report constrained")
	}
	if got := cb.ConstrainWidth(1e9); got != 1e9 {
		t.Errorf("unbounded ConstrainWidth(1e9) = %g", got)
	}
}

func TestConstraintBox_Definite(t *testing.T) {
	cb := Definite(800, 600)
	if !cb.IsWidthConstrained() || !cb.IsHeightConstrained() {
		t.Error("definite box must report constrained")
	}
	if !cb.WidthDefinite || !cb.HeightDefinite {
		t.Error("definite box must set the definite flags")
	}
	if got := cb.ConstrainWidth(1000); got != 800 {
		t.Errorf("ConstrainWidth(1000) = %g, want 800", got)
	}
}

func TestConstraintsFor_MinMaxDimensions(t *testing.T) {
	e := ui.NewElement(1, ui.ElementContainer)
	e.Size.Width = ui.MinPixels(100)
	e.Size.Height = ui.MaxPixels(50)

	cb := constraintsFor(e)
	if cb.MinWidth != 100 {
		t.Errorf("MinWidth = %g, want 100", cb.MinWidth)
	}
	if cb.IsWidthConstrained() {
		t.Error("min-only width should leave the upper bound infinite")
	}
	if cb.MaxHeight != 50 || !cb.IsHeightConstrained() {
		t.Errorf("MaxHeight = %g constrained=%v, want 50/true", cb.MaxHeight, cb.IsHeightConstrained())
	}
}
