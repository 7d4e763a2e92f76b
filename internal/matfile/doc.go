// Package matfile loads named numeric arrays from MATLAB data files.
//
// The coefficient time series consumed by the aberration initializer is
// recorded by external tooling in one of the MAT container generations,
// declared by a format-version tag:
//
//   - "v4": Level 4 files (MOPT header, native reader)
//   - "v6", "v7": Level 5 files, optionally zlib-compressed (native reader)
//   - "v7.3": HDF5 containers (gonum.org/v1/hdf5 backend)
//
// [Load] treats the file as an opaque named-variable store and returns
// the requested variable as a row-major [Array] widened to float64.
// Complex, sparse, cell and struct variables are rejected.
package matfile
