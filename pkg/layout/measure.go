package layout

import "math"

// TextMetrics is what the external measurement collaborator reports
// for a piece of shaped text.
type TextMetrics struct {
	Width      float64
	Height     float64
	Baseline   float64 // baseline offset from the top, in pixels
	LineHeight float64
}

// TextMeasurer is the intrinsic-measurement collaborator consumed by
// layout for auto-sized text leaves. A maxWidth of zero or less means
// unbounded (no wrapping).
type TextMeasurer interface {
	MeasureText(text string, fontSize float64, maxWidth float64) TextMetrics
}

// EstimateMeasurer approximates text metrics from character counts,
// with no font access. It is the engine's default collaborator and
// mirrors the estimate used when a real font face fails to load:
// 0.6em advance per character, 1.2em line height.
type EstimateMeasurer struct{}

func (EstimateMeasurer) MeasureText(text string, fontSize float64, maxWidth float64) TextMetrics {
	width := float64(len([]rune(text))) * fontSize * 0.6
	lineHeight := fontSize * 1.2

	lines := 1.0
	if maxWidth > 0 && width > maxWidth {
		lines = math.Ceil(width / maxWidth)
		width = maxWidth
	}
	return TextMetrics{
		Width:      width,
		Height:     lines * lineHeight,
		Baseline:   fontSize,
		LineHeight: lineHeight,
	}
}
