// Package grid builds the Cartesian pupil meshes feeding Zernike
// evaluation and converts them between Cartesian and polar form.
package grid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrShape indicates coordinate arrays whose dimensions do not agree.
var ErrShape = errors.New("grid: coordinate arrays must have equal dimensions")

// Linspace returns n evenly spaced samples covering [lo, hi].
// A single sample collapses to lo.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// Square returns the Cartesian mesh of a size x size grid spanning [-1, 1]
// on both axes. X varies along columns, Y along rows.
func Square(size int) (x, y *mat.Dense) {
	s := Linspace(-1, 1, size)
	x = mat.NewDense(size, size, nil)
	y = mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			x.Set(i, j, s[j])
			y.Set(i, j, s[i])
		}
	}
	return x, y
}

// CartesianToPolar converts element-wise Cartesian coordinates to polar
// form: r = sqrt(x^2+y^2), phi = atan2(y, x).
func CartesianToPolar(x, y *mat.Dense) (r, phi *mat.Dense, err error) {
	rows, cols, err := matchShape(x, y)
	if err != nil {
		return nil, nil, err
	}
	r = mat.NewDense(rows, cols, nil)
	phi = mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			xv, yv := x.At(i, j), y.At(i, j)
			r.Set(i, j, math.Hypot(xv, yv))
			phi.Set(i, j, math.Atan2(yv, xv))
		}
	}
	return r, phi, nil
}

// PolarToCartesian is the inverse of CartesianToPolar: x = r*cos(phi),
// y = r*sin(phi).
func PolarToCartesian(r, phi *mat.Dense) (x, y *mat.Dense, err error) {
	rows, cols, err := matchShape(r, phi)
	if err != nil {
		return nil, nil, err
	}
	x = mat.NewDense(rows, cols, nil)
	y = mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			rv, pv := r.At(i, j), phi.At(i, j)
			x.Set(i, j, rv*math.Cos(pv))
			y.Set(i, j, rv*math.Sin(pv))
		}
	}
	return x, y, nil
}

func matchShape(a, b *mat.Dense) (rows, cols int, err error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return 0, 0, fmt.Errorf("%w: %dx%d vs %dx%d", ErrShape, ar, ac, br, bc)
	}
	return ar, ac, nil
}
