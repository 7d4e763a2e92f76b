// Package zernike generates cubes of Zernike basis images on a
// discretized pupil grid.
//
// Modes follow Noll's sequential ordering:
//
//	cube.Mode(0) = piston
//	cube.Mode(1) = tip
//	cube.Mode(2) = tilt
//	...
//
// The first 22 polynomials are implemented as a fixed table of
// closed-form functions over the polar grid; [Generate] evaluates them on
// a square [-1, 1] mesh and [Cube.CropCenter] performs the symmetric
// truncation used when placing aberration data over a smaller pupil.
package zernike
