// Package temporal validates externally recorded time series against the
// simulation's fixed iteration period.
package temporal

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultTolerance bounds the acceptable spread between time steps and
// the distance of the step ratio from an integer.
const DefaultTolerance = 1e-12

var (
	// ErrNonUniformSampling indicates a time series whose consecutive
	// differences spread beyond the tolerance.
	ErrNonUniformSampling = errors.New("temporal: time series is not equally spaced")

	// ErrSubIterationStep indicates samples arriving faster than the
	// simulation iterates.
	ErrSubIterationStep = errors.New("temporal: series step is smaller than the iteration time")

	// ErrNonIntegerDecimation indicates a step that is not an integer
	// multiple of the iteration time.
	ErrNonIntegerDecimation = errors.New("temporal: series step is not a multiple of the iteration time")
)

// ValidateStep checks that times is uniformly sampled within tol and that
// its step is an integer multiple (>= 1) of iterTime, and returns the
// step in seconds.
func ValidateStep(times []float64, iterTime, tol float64) (float64, error) {
	if len(times) < 2 {
		return 0, fmt.Errorf("%w: need at least two time stamps, got %d", ErrNonUniformSampling, len(times))
	}
	diffs := make([]float64, len(times)-1)
	for i := range diffs {
		diffs[i] = times[i+1] - times[i]
	}
	if floats.Max(diffs)-floats.Min(diffs) > tol {
		return 0, fmt.Errorf("%w: step spread %.3g exceeds tolerance %.3g",
			ErrNonUniformSampling, floats.Max(diffs)-floats.Min(diffs), tol)
	}

	step := stat.Mean(diffs, nil)
	ratio := step / iterTime
	if ratio < 1.0 {
		return 0, fmt.Errorf("%w: step %.3g s vs iteration time %.3g s",
			ErrSubIterationStep, step, iterTime)
	}
	if math.Abs(ratio-math.Round(ratio)) > tol {
		return 0, fmt.Errorf("%w: step/iteration ratio %.12g", ErrNonIntegerDecimation, ratio)
	}
	return step, nil
}

// Decimation returns the number of simulation iterations per series
// sample for a step previously accepted by ValidateStep.
func Decimation(step, iterTime float64) int {
	return int(math.Round(step / iterTime))
}
