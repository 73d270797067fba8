// Package text implements the intrinsic-measurement collaborator
// consumed by layout for auto-sized text leaves, backed by fogleman/gg
// font rendering.
package text

import (
	"math"
	"strings"

	"github.com/fogleman/gg"

	"trellis/pkg/layout"
)

// FontConfig holds paths to the font files used for measurement.
type FontConfig struct {
	Regular string
	Bold    string
}

// Measurer measures shaped text with a real font face. When the face
// cannot be loaded it degrades to a character-count estimate, so
// layout never fails on a missing font.
type Measurer struct {
	fonts FontConfig
}

// NewMeasurer returns a measurer over the given fonts. Empty paths
// are allowed; measurement then always uses the estimate.
func NewMeasurer(fonts FontConfig) *Measurer {
	return &Measurer{fonts: fonts}
}

// MeasureText implements layout.TextMeasurer. A maxWidth of zero or
// less means unbounded: the text stays on one line.
func (m *Measurer) MeasureText(textContent string, fontSize float64, maxWidth float64) layout.TextMetrics {
	dc := gg.NewContext(1, 1)
	if m.fonts.Regular == "" || dc.LoadFontFace(m.fonts.Regular, fontSize) != nil {
		return layout.EstimateMeasurer{}.MeasureText(textContent, fontSize, maxWidth)
	}

	lineHeight := fontSize * 1.2
	width, _ := dc.MeasureString(textContent)

	if maxWidth <= 0 || width <= maxWidth {
		return layout.TextMetrics{
			Width:      width,
			Height:     lineHeight,
			Baseline:   fontSize,
			LineHeight: lineHeight,
		}
	}

	lines := breakIntoLines(dc, textContent, maxWidth)
	widest := 0.0
	for _, line := range lines {
		if w, _ := dc.MeasureString(line); w > widest {
			widest = w
		}
	}
	return layout.TextMetrics{
		Width:      math.Min(widest, maxWidth),
		Height:     float64(len(lines)) * lineHeight,
		Baseline:   fontSize,
		LineHeight: lineHeight,
	}
}

// breakIntoLines splits text into lines that fit maxWidth, breaking
// at word boundaries. A word wider than maxWidth gets a line of its
// own rather than being split mid-word.
func breakIntoLines(dc *gg.Context, textContent string, maxWidth float64) []string {
	words := strings.Fields(textContent)
	if len(words) == 0 {
		return []string{textContent}
	}

	var lines []string
	current := ""
	for _, word := range words {
		test := current
		if test != "" {
			test += " "
		}
		test += word

		if w, _ := dc.MeasureString(test); w <= maxWidth {
			current = test
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{textContent}
	}
	return lines
}
