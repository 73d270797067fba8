package ui

import "testing"

func TestDimension_ToPixels(t *testing.T) {
	if got := Percentage(0.5).ToPixels(400); got != 200 {
		t.Errorf("Percentage(0.5).ToPixels(400) = %g, want 200", got)
	}
	if got := Auto().ToPixels(400); got != 400 {
		t.Errorf("Auto().ToPixels(400) = %g, want 400 (auto fills parent)", got)
	}
	if got := Pixels(100).ToPixels(12345); got != 100 {
		t.Errorf("Pixels(100).ToPixels(12345) = %g, want 100", got)
	}
	if got := MinPixels(80).ToPixels(400); got != 80 {
		t.Errorf("MinPixels(80).ToPixels(400) = %g, want 80", got)
	}
	if got := MaxPixels(120).ToPixels(400); got != 120 {
		t.Errorf("MaxPixels(120).ToPixels(400) = %g, want 120", got)
	}
}

func TestDimension_DependsOnParent(t *testing.T) {
	cases := []struct {
		dim  Dimension
		want bool
	}{
		{Pixels(10), false},
		{MinPixels(10), false},
		{MaxPixels(10), false},
		{Percentage(0.3), true},
		{Auto(), true},
	}
	for _, c := range cases {
		if got := c.dim.DependsOnParent(); got != c.want {
			t.Errorf("%v.DependsOnParent() = %v, want %v", c.dim, got, c.want)
		}
	}
}

func TestDimension_IsDefinite(t *testing.T) {
	if Auto().IsDefinite() {
		t.Error("Auto should not be definite")
	}
	for _, d := range []Dimension{Pixels(1), Percentage(0.5), MinPixels(1), MaxPixels(1)} {
		if !d.IsDefinite() {
			t.Errorf("%v should be definite", d)
		}
	}
}

func TestParseDimension(t *testing.T) {
	cases := []struct {
		in   string
		want Dimension
	}{
		{"50%", Percentage(0.5)},
		{"100px", Pixels(100)},
		{"auto", Auto()},
		{"200", Pixels(200)},
		{"  25%  ", Percentage(0.25)},
		{"garbage", Auto()},
		{"12qx", Auto()},
		{"%", Auto()},
		{"", Auto()},
	}
	for _, c := range cases {
		if got := ParseDimension(c.in); got != c.want {
			t.Errorf("ParseDimension(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDimension_ZeroValueIsAuto(t *testing.T) {
	var d Dimension
	if d.Kind != DimensionAuto {
		t.Errorf("zero Dimension kind = %v, want Auto", d.Kind)
	}
}
