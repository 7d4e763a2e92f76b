// Package screen synthesizes pupil phase screens from a Zernike basis
// cube and a coefficient vector.
package screen

import (
	"errors"
	"fmt"

	"github.com/aosim/zaberration/internal/zernike"
	"gonum.org/v1/gonum/floats"
)

// ErrDimensionMismatch indicates a coefficient vector whose length does
// not match the basis cube's mode count.
var ErrDimensionMismatch = errors.New("screen: coefficient count must equal basis mode count")

// Screen is a single-precision optical path difference map across the
// pupil at one time sample.
type Screen struct {
	rows, cols int
	data       []float32
}

// Rows returns the number of pixel rows.
func (s *Screen) Rows() int { return s.rows }

// Cols returns the number of pixel columns.
func (s *Screen) Cols() int { return s.cols }

// At returns the value at row i, column j.
func (s *Screen) At(i, j int) float32 { return s.data[i*s.cols+j] }

// Data returns the backing row-major slice.
func (s *Screen) Data() []float32 { return s.data }

// Synthesize computes the weighted sum of the basis modes,
// phase = sum_k coeffs[k] * cube.Mode(k), accumulating in double
// precision and casting to single precision on return.
func Synthesize(cube *zernike.Cube, coeffs []float64) (*Screen, error) {
	if len(coeffs) != cube.Modes() {
		return nil, fmt.Errorf("%w: %d coefficients vs %d modes",
			ErrDimensionMismatch, len(coeffs), cube.Modes())
	}

	n := cube.Size()
	acc := make([]float64, n*n)
	for k, c := range coeffs {
		floats.AddScaled(acc, c, cube.Mode(k).RawMatrix().Data)
	}

	out := &Screen{rows: n, cols: n, data: make([]float32, n*n)}
	for i, v := range acc {
		out.data[i] = float32(v)
	}
	return out, nil
}
