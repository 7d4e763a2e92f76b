package matfile

import (
	"errors"
	"fmt"
	"path/filepath"
)

var (
	// ErrUnsupportedFormat indicates an unknown format-version tag.
	ErrUnsupportedFormat = errors.New(`matfile: format version must be "v4", "v6", "v7" or "v7.3"`)

	// ErrVariableNotFound indicates the named variable is absent from the file.
	ErrVariableNotFound = errors.New("matfile: variable not found")

	// ErrUnsupportedClass indicates a stored variable this reader cannot
	// represent (complex, sparse, cell, struct, >2-D).
	ErrUnsupportedClass = errors.New("matfile: unsupported variable class")
)

// Array is a dense row-major numeric array with MATLAB (rows, cols)
// semantics, widened to float64.
type Array struct {
	Dims []int
	Data []float64
}

// Rows returns the first dimension.
func (a *Array) Rows() int { return a.Dims[0] }

// Cols returns the second dimension.
func (a *Array) Cols() int { return a.Dims[1] }

// At returns the element at row i, column j.
func (a *Array) At(i, j int) float64 { return a.Data[i*a.Cols()+j] }

// Row returns a copy of row i.
func (a *Array) Row(i int) []float64 {
	out := make([]float64, a.Cols())
	copy(out, a.Data[i*a.Cols():(i+1)*a.Cols()])
	return out
}

// Ravel returns the flattened data. Row and column vectors flatten to the
// same sequence, matching how 1-D series are stored either way round.
func (a *Array) Ravel() []float64 {
	out := make([]float64, len(a.Data))
	copy(out, a.Data)
	return out
}

// Load reads the named variable from dir/name, selecting the container
// backend by the declared format version: "v4" and "v6"/"v7" use the
// native MAT readers, "v7.3" the HDF5 backend. Every call re-reads the
// file; nothing is cached.
func Load(dir, name, version, variable string) (*Array, error) {
	path := filepath.Join(dir, name)
	switch version {
	case "v4":
		return loadMAT4(path, variable)
	case "v6", "v7":
		return loadMAT5(path, variable)
	case "v7.3":
		return loadHDF5(path, variable)
	default:
		return nil, fmt.Errorf("%w: got %q", ErrUnsupportedFormat, version)
	}
}

// fromColumnMajor reorders MATLAB column-major storage into a row-major
// Array.
func fromColumnMajor(rows, cols int, src []float64) *Array {
	out := &Array{Dims: []int{rows, cols}, Data: make([]float64, rows*cols)}
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			out.Data[i*cols+j] = src[j*rows+i]
		}
	}
	return out
}
