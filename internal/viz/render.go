package viz

import (
	"strings"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/mat"
)

// heatChars shade a pixel by normalized magnitude, low to high.
var heatChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// CrossSection returns the center row of a mode image.
func CrossSection(m *mat.Dense) []float64 {
	rows, cols := m.Dims()
	out := make([]float64, cols)
	mat.Row(out, rows/2, m)
	return out
}

// Profile plots the center-row profile of a mode image.
func Profile(m *mat.Dense, height int) string {
	return asciigraph.Plot(CrossSection(m), asciigraph.Height(height))
}

// Heatmap renders a mode image with shaded block characters, one rune
// per pixel column, sampling rows to at most width lines.
func Heatmap(m *mat.Dense, width int) string {
	rows, cols := m.Dims()
	lo, hi := mat.Min(m), mat.Max(m)
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := 1
	if cols > width {
		step = (cols + width - 1) / width
	}

	var b strings.Builder
	for i := 0; i < rows; i += step {
		for j := 0; j < cols; j += step {
			norm := (m.At(i, j) - lo) / rng
			idx := int(norm * float64(len(heatChars)-1))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(heatChars) {
				idx = len(heatChars) - 1
			}
			c := string(heatChars[idx])
			switch {
			case norm > 0.7:
				b.WriteString(heatHi.Render(c))
			case norm > 0.3:
				b.WriteString(heatMid.Render(c))
			default:
				b.WriteString(heatLow.Render(c))
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
