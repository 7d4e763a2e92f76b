package zernike

import (
	"errors"
	"fmt"
	"math"

	"github.com/aosim/zaberration/internal/grid"
)

// MaxModes is the number of Noll-ordered polynomials implemented.
const MaxModes = 22

var (
	// ErrUnsupportedOrder indicates a mode count outside 1..MaxModes.
	ErrUnsupportedOrder = errors.New("zernike: mode count outside the implemented Noll range")

	// ErrInvalidGrid indicates a non-positive grid size.
	ErrInvalidGrid = errors.New("zernike: grid size must be positive")
)

var (
	sqrt3  = math.Sqrt(3)
	sqrt5  = math.Sqrt(5)
	sqrt6  = math.Sqrt(6)
	sqrt7  = math.Sqrt(7)
	sqrt8  = math.Sqrt(8)
	sqrt10 = math.Sqrt(10)
	sqrt12 = math.Sqrt(12)
)

// noll lists the closed-form polynomials in Noll order, index 0 = piston.
var noll = []func(r, phi float64) float64{
	func(r, phi float64) float64 { return 1 },
	func(r, phi float64) float64 { return 2 * r * math.Cos(phi) },
	func(r, phi float64) float64 { return 2 * r * math.Sin(phi) },
	func(r, phi float64) float64 { return sqrt3 * (2*r*r - 1) },
	func(r, phi float64) float64 { return sqrt6 * r * r * math.Sin(2*phi) },
	func(r, phi float64) float64 { return sqrt6 * r * r * math.Cos(2*phi) },
	func(r, phi float64) float64 { return sqrt8 * (3*r*r*r - 2*r) * math.Sin(phi) },
	func(r, phi float64) float64 { return sqrt8 * (3*r*r*r - 2*r) * math.Cos(phi) },
	func(r, phi float64) float64 { return sqrt8 * r * r * r * math.Sin(3*phi) },
	func(r, phi float64) float64 { return sqrt8 * r * r * r * math.Cos(3*phi) },
	func(r, phi float64) float64 {
		r2 := r * r
		return sqrt5 * (6*r2*r2 - 6*r2 + 1)
	},
	func(r, phi float64) float64 {
		r2 := r * r
		return sqrt10 * (4*r2*r2 - 3*r2) * math.Cos(2*phi)
	},
	func(r, phi float64) float64 {
		r2 := r * r
		return sqrt10 * (4*r2*r2 - 3*r2) * math.Sin(2*phi)
	},
	func(r, phi float64) float64 {
		r2 := r * r
		return sqrt10 * r2 * r2 * math.Cos(4*phi)
	},
	func(r, phi float64) float64 {
		r2 := r * r
		return sqrt10 * r2 * r2 * math.Sin(4*phi)
	},
	func(r, phi float64) float64 {
		r2, r3 := r*r, r*r*r
		return sqrt12 * (10*r3*r2 - 12*r3 + 3*r) * math.Cos(phi)
	},
	func(r, phi float64) float64 {
		r2, r3 := r*r, r*r*r
		return sqrt12 * (10*r3*r2 - 12*r3 + 3*r) * math.Sin(phi)
	},
	func(r, phi float64) float64 {
		r2, r3 := r*r, r*r*r
		return sqrt12 * (5*r3*r2 - 4*r3) * math.Cos(3*phi)
	},
	func(r, phi float64) float64 {
		r2, r3 := r*r, r*r*r
		return sqrt12 * (5*r3*r2 - 4*r3) * math.Sin(3*phi)
	},
	func(r, phi float64) float64 {
		r2, r3 := r*r, r*r*r
		return sqrt12 * r3 * r2 * math.Cos(5*phi)
	},
	func(r, phi float64) float64 {
		r2, r3 := r*r, r*r*r
		return sqrt12 * r3 * r2 * math.Sin(5*phi)
	},
	func(r, phi float64) float64 {
		r2 := r * r
		r4 := r2 * r2
		return sqrt7 * (20*r4*r2 - 30*r4 + 12*r2 - 1)
	},
}

// names holds conventional aberration names, Noll order.
var names = []string{
	"piston",
	"tip",
	"tilt",
	"defocus",
	"oblique astigmatism",
	"vertical astigmatism",
	"vertical coma",
	"horizontal coma",
	"vertical trefoil",
	"oblique trefoil",
	"primary spherical",
	"vertical secondary astigmatism",
	"oblique secondary astigmatism",
	"vertical quadrafoil",
	"oblique quadrafoil",
	"horizontal secondary coma",
	"vertical secondary coma",
	"oblique secondary trefoil",
	"vertical secondary trefoil",
	"horizontal pentafoil",
	"vertical pentafoil",
	"secondary spherical",
}

// Name returns the conventional aberration name for a Noll index, or ""
// when the index is out of range.
func Name(k int) string {
	if k < 0 || k >= len(names) {
		return ""
	}
	return names[k]
}

// Generate evaluates the first modes Noll polynomials on a square
// Cartesian grid spanning [-1, 1] with gridSize samples per axis and
// returns them as an ordered cube.
func Generate(modes, gridSize int) (*Cube, error) {
	if modes < 1 || modes > MaxModes {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrUnsupportedOrder, modes, MaxModes)
	}
	if gridSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGrid, gridSize)
	}

	x, y := grid.Square(gridSize)
	r, phi, err := grid.CartesianToPolar(x, y)
	if err != nil {
		return nil, err
	}

	c := newCube(modes, gridSize)
	for k := 0; k < modes; k++ {
		z := c.slices[k]
		for i := 0; i < gridSize; i++ {
			for j := 0; j < gridSize; j++ {
				z.Set(i, j, noll[k](r.At(i, j), phi.At(i, j)))
			}
		}
	}
	return c, nil
}
