package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGBA color with each channel in the 0.0-1.0 range.
// This is the resolved form handed to renderer backends.
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// Transparent is fully transparent black, the "unset" value for
// backgrounds and borders.
var Transparent = Color{}

// Black is opaque black, the default text color.
var Black = Color{A: 1}

// RGBA8 builds a Color from 8-bit channel values.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// IsTransparent reports whether the color would paint nothing.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// ParseColor parses a hex color literal: #RGB, #RRGGBB or #RRGGBBAA.
// Alpha defaults to opaque when omitted.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("color %q: missing '#' prefix", s)
	}
	hex := s[1:]

	var r, g, b, a uint64
	var err error
	a = 0xFF
	switch len(hex) {
	case 3:
		// #RGB shorthand: each digit doubles
		r, err = parseHexChannel(hex[0:1] + hex[0:1])
		if err == nil {
			g, err = parseHexChannel(hex[1:2] + hex[1:2])
		}
		if err == nil {
			b, err = parseHexChannel(hex[2:3] + hex[2:3])
		}
	case 6, 8:
		r, err = parseHexChannel(hex[0:2])
		if err == nil {
			g, err = parseHexChannel(hex[2:4])
		}
		if err == nil {
			b, err = parseHexChannel(hex[4:6])
		}
		if err == nil && len(hex) == 8 {
			a, err = parseHexChannel(hex[6:8])
		}
	default:
		return Color{}, fmt.Errorf("color %q: expected 3, 6 or 8 hex digits", s)
	}
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGBA8(uint8(r), uint8(g), uint8(b), uint8(a)), nil
}

func parseHexChannel(s string) (uint64, error) {
	return strconv.ParseUint(s, 16, 8)
}
