package zernike

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Cube is an ordered stack of basis images sharing one square spatial
// extent. Index 0 is the unit-valued piston mode.
type Cube struct {
	size   int
	slices []*mat.Dense
}

func newCube(modes, size int) *Cube {
	c := &Cube{size: size, slices: make([]*mat.Dense, modes)}
	for k := range c.slices {
		c.slices[k] = mat.NewDense(size, size, nil)
	}
	return c
}

// Modes returns the number of basis images in the cube.
func (c *Cube) Modes() int { return len(c.slices) }

// Size returns the spatial side length in pixels.
func (c *Cube) Size() int { return c.size }

// Mode returns the k-th basis image.
func (c *Cube) Mode(k int) *mat.Dense { return c.slices[k] }

// CropCenter returns a new cube holding the central size x size window of
// every mode. The margin must be symmetric, so the size difference has to
// be even.
func (c *Cube) CropCenter(size int) (*Cube, error) {
	if size <= 0 || size > c.size {
		return nil, fmt.Errorf("%w: cannot crop %d px to %d px", ErrInvalidGrid, c.size, size)
	}
	if (c.size-size)%2 != 0 {
		return nil, fmt.Errorf("%w: %d px to %d px leaves an odd margin", ErrInvalidGrid, c.size, size)
	}
	off := (c.size - size) / 2
	out := &Cube{size: size, slices: make([]*mat.Dense, len(c.slices))}
	for k, z := range c.slices {
		out.slices[k] = mat.DenseCopyOf(z.Slice(off, off+size, off, off+size))
	}
	return out, nil
}
