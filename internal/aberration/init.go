package aberration

import (
	"fmt"

	"github.com/aosim/zaberration/internal/matfile"
	"github.com/aosim/zaberration/internal/pupil"
	"github.com/aosim/zaberration/internal/screen"
	"github.com/aosim/zaberration/internal/temporal"
	"github.com/aosim/zaberration/internal/zernike"
)

// Loader fetches a named array from the external coefficient store.
// The default implementation re-reads a MAT-file on every call; tests
// and streaming setups can substitute their own.
type Loader interface {
	Load(dir, name, version, variable string) (*matfile.Array, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(dir, name, version, variable string) (*matfile.Array, error)

// Load calls f.
func (f LoaderFunc) Load(dir, name, version, variable string) (*matfile.Array, error) {
	return f(dir, name, version, variable)
}

// OpticalPath receives the synthesized phase screens. It stands in for
// the simulation's telescope model.
type OpticalPath interface {
	SetScienceAberration(*screen.Screen)
	SetSensingAberration(*screen.Screen)
}

// Telescope is a minimal optical path model holding the injected screens.
type Telescope struct {
	Science *screen.Screen
	Sensing *screen.Screen
}

func (t *Telescope) SetScienceAberration(s *screen.Screen) { t.Science = s }
func (t *Telescope) SetSensingAberration(s *screen.Screen) { t.Sensing = s }

// Result collects everything the initialization derives. It is built
// once and handed back; nothing external is mutated along the way.
type Result struct {
	Enabled bool

	// SmallCube and MarginedCube are the basis cubes truncated to the
	// small and margined pupil grids.
	SmallCube    *zernike.Cube
	MarginedCube *zernike.Cube

	// Coeffs holds the full coefficient series, one row per time sample;
	// Times the matching time stamps.
	Coeffs *matfile.Array
	Times  []float64

	// Step is the series step in seconds, Decimation the number of
	// simulation iterations per sample.
	Step       float64
	Decimation int

	// ResolvedDiameter is the assumed pupil diameter in meters; zero
	// when AutoFit placed the data directly on the simulation grid.
	ResolvedDiameter float64
	AutoFit          bool

	// ScienceScreen and SensingScreen are the initial phase screens for
	// the selected paths, nil for paths not included.
	ScienceScreen *screen.Screen
	SensingScreen *screen.Screen
}

// Initializer orchestrates aberration setup against an injected loader.
type Initializer struct {
	loader Loader
}

// New returns an Initializer using loader, or the MAT-file loader when
// loader is nil.
func New(loader Loader) *Initializer {
	if loader == nil {
		loader = LoaderFunc(matfile.Load)
	}
	return &Initializer{loader: loader}
}

// Initialize resolves the aberration geometry, builds the truncated
// basis cubes, loads and validates the coefficient series, synthesizes
// the initial phase screens for the selected paths and writes them into
// path. Nothing is written before every validation has passed.
func (in *Initializer) Initialize(p Params, g Geometry, path OpticalPath) (*Result, error) {
	if !p.Enabled {
		return &Result{Enabled: false}, nil
	}
	if p.IncludePath < IncludeNone || p.IncludePath > IncludeBoth {
		return nil, fmt.Errorf("%w: include path %d (want 0..3)", ErrInvalidParameter, p.IncludePath)
	}

	res := &Result{Enabled: true}
	if err := in.resolveGeometry(p, g, res); err != nil {
		return nil, err
	}
	if err := in.loadSeries(p, g, res); err != nil {
		return nil, err
	}
	if err := synthesizeScreens(p, res); err != nil {
		return nil, err
	}

	if path != nil {
		if res.ScienceScreen != nil {
			path.SetScienceAberration(res.ScienceScreen)
		}
		if res.SensingScreen != nil {
			path.SetSensingAberration(res.SensingScreen)
		}
	}
	return res, nil
}

// resolveGeometry reconciles the aberration-data diameter with the two
// simulation pupil grids and fills in the truncated basis cubes.
func (in *Initializer) resolveGeometry(p Params, g Geometry, res *Result) error {
	diam := p.PupilDiameter
	if diam == FitToTelescope {
		diam = g.TelescopeDiameter
	}

	switch {
	case diam > 0:
		if diam >= p.DataDiameter {
			return fmt.Errorf("%w: pupil diameter %g m must be smaller than the data diameter %g m",
				ErrGeometry, diam, p.DataDiameter)
		}
		dataPix := pupil.PixelsForDiameter(g.SmallPupil, diam, p.DataDiameter)
		cube, err := zernike.Generate(p.Modes, dataPix)
		if err != nil {
			return err
		}
		switch {
		case dataPix > g.MarginedPupil:
			if res.MarginedCube, err = cube.CropCenter(g.MarginedPupil); err != nil {
				return err
			}
			if res.SmallCube, err = cube.CropCenter(g.SmallPupil); err != nil {
				return err
			}
		case dataPix == g.MarginedPupil:
			if res.SmallCube, err = cube.CropCenter(g.SmallPupil); err != nil {
				return err
			}
			res.MarginedCube = cube
		default:
			return fmt.Errorf("%w: aberration data (%d px) must be at least as large as the margined pupil (%d px)",
				ErrGeometry, dataPix, g.MarginedPupil)
		}
		res.ResolvedDiameter = diam

	case diam == FitToGrid:
		cube, err := zernike.Generate(p.Modes, g.MarginedPupil)
		if err != nil {
			return err
		}
		if res.SmallCube, err = cube.CropCenter(g.SmallPupil); err != nil {
			return err
		}
		res.MarginedCube = cube
		res.AutoFit = true

	default:
		return fmt.Errorf("%w: pupil diameter %g (want > 0, -1 or -2)",
			ErrInvalidParameter, p.PupilDiameter)
	}
	return nil
}

// loadSeries reads the coefficient and time-stamp series and validates
// the temporal grid against the iteration time.
func (in *Initializer) loadSeries(p Params, g Geometry, res *Result) error {
	coeffs, err := in.loader.Load(p.FileDir, p.FileName, p.FormatVersion, p.CoeffVariable)
	if err != nil {
		return err
	}
	times, err := in.loader.Load(p.FileDir, p.FileName, p.FormatVersion, p.TimeVariable)
	if err != nil {
		return err
	}

	tol := p.Tolerance
	if tol == 0 {
		tol = temporal.DefaultTolerance
	}
	res.Times = times.Ravel()
	res.Step, err = temporal.ValidateStep(res.Times, g.IterTime, tol)
	if err != nil {
		return err
	}
	res.Decimation = temporal.Decimation(res.Step, g.IterTime)
	res.Coeffs = coeffs
	return nil
}

// synthesizeScreens computes the screens for the first time sample on
// the paths selected by the inclusion flag.
func synthesizeScreens(p Params, res *Result) error {
	first := res.Coeffs.Row(0)
	var err error
	if p.IncludePath == IncludeScience || p.IncludePath == IncludeBoth {
		if res.ScienceScreen, err = screen.Synthesize(res.SmallCube, first); err != nil {
			return err
		}
	}
	if p.IncludePath == IncludeSensing || p.IncludePath == IncludeBoth {
		if res.SensingScreen, err = screen.Synthesize(res.MarginedCube, first); err != nil {
			return err
		}
	}
	return nil
}
