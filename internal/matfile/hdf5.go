package matfile

import (
	"fmt"

	"gonum.org/v1/hdf5"
)

// loadHDF5 reads a named variable from a MATLAB v7.3 file, which is an
// HDF5 container with one dataset per variable. MATLAB writes arrays
// column-major, so the dataset dimensions arrive reversed relative to the
// (rows, cols) shape and the data is transposed on the way out.
func loadHDF5(path, variable string) (*Array, error) {
	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, fmt.Errorf("matfile: %w", err)
	}
	defer f.Close()

	ds, err := f.OpenDataset(variable)
	if err != nil {
		return nil, fmt.Errorf("%w: %q in %s", ErrVariableNotFound, variable, path)
	}
	defer ds.Close()

	space := ds.Space()
	defer space.Close()
	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, fmt.Errorf("matfile: %q: %w", variable, err)
	}

	var rows, cols int
	switch len(dims) {
	case 1:
		rows, cols = 1, int(dims[0])
	case 2:
		rows, cols = int(dims[1]), int(dims[0])
	default:
		return nil, fmt.Errorf("%w: %d-dimensional dataset", ErrUnsupportedClass, len(dims))
	}

	raw := make([]float64, rows*cols)
	if err := ds.Read(&raw); err != nil {
		return nil, fmt.Errorf("matfile: reading %q: %w", variable, err)
	}
	if len(dims) == 1 {
		out := &Array{Dims: []int{rows, cols}, Data: raw}
		return out, nil
	}
	return fromColumnMajor(rows, cols, raw), nil
}
