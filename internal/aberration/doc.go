// Package aberration injects empirically recorded Zernike aberrations
// into an adaptive-optics simulation.
//
// [Initializer.Initialize] runs once per simulation setup:
//
//  1. resolve the aberration-data diameter (explicit meters or one of
//     the [FitToTelescope] / [FitToGrid] sentinels) against the
//     simulation's small and margined pupil grids,
//  2. generate and centrally truncate the Zernike basis cubes,
//  3. load the coefficient and time-stamp series from the external
//     store and validate the temporal grid,
//  4. synthesize the initial phase screens and hand them to the
//     [OpticalPath].
//
// The returned [Result] carries the cubes, series, step and decimation
// factor; advancing to later samples every Decimation iterations is the
// simulation driver's job.
package aberration
