package aberration

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aosim/zaberration/internal/matfile"
	"github.com/aosim/zaberration/internal/screen"
	"github.com/aosim/zaberration/internal/temporal"
)

// fakeLoader serves arrays by variable name and counts calls.
type fakeLoader struct {
	arrays map[string]*matfile.Array
	calls  int
}

func (f *fakeLoader) Load(dir, name, version, variable string) (*matfile.Array, error) {
	f.calls++
	arr, ok := f.arrays[variable]
	if !ok {
		return nil, fmt.Errorf("%w: %q", matfile.ErrVariableNotFound, variable)
	}
	return arr, nil
}

func seriesLoader() *fakeLoader {
	return &fakeLoader{arrays: map[string]*matfile.Array{
		"coeff": {Dims: []int{2, 3}, Data: []float64{
			1, 0, 0,
			0, 1, 0,
		}},
		"time": {Dims: []int{1, 3}, Data: []float64{0.0, 0.1, 0.2}},
	}}
}

func baseParams() Params {
	return Params{
		Enabled:       true,
		Modes:         3,
		PupilDiameter: FitToGrid,
		DataDiameter:  9.0,
		FileName:      "series.mat",
		FormatVersion: "v7",
		CoeffVariable: "coeff",
		TimeVariable:  "time",
		IncludePath:   IncludeBoth,
	}
}

func baseGeometry() Geometry {
	return Geometry{
		TelescopeDiameter: 8.0,
		SmallPupil:        8,
		MarginedPupil:     12,
		IterTime:          0.01,
	}
}

func TestInitializeDisabled(t *testing.T) {
	loader := seriesLoader()
	p := baseParams()
	p.Enabled = false

	res, err := New(loader).Initialize(p, baseGeometry(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Enabled {
		t.Error("result should be disabled")
	}
	if loader.calls != 0 {
		t.Errorf("loader called %d times for disabled aberration", loader.calls)
	}
}

func TestInitializeAutoFitBothPaths(t *testing.T) {
	tel := &Telescope{}
	res, err := New(seriesLoader()).Initialize(baseParams(), baseGeometry(), tel)
	if err != nil {
		t.Fatal(err)
	}

	if !res.AutoFit || res.ResolvedDiameter != 0 {
		t.Errorf("AutoFit = %v, diameter = %g", res.AutoFit, res.ResolvedDiameter)
	}
	if res.SmallCube.Size() != 8 || res.MarginedCube.Size() != 12 {
		t.Errorf("cube sizes %d/%d, want 8/12", res.SmallCube.Size(), res.MarginedCube.Size())
	}
	if res.Step != 0.1 || res.Decimation != 10 {
		t.Errorf("step %g, decimation %d, want 0.1, 10", res.Step, res.Decimation)
	}

	if tel.Science == nil || tel.Sensing == nil {
		t.Fatal("both optical paths should receive screens")
	}
	if tel.Science.Rows() != 8 || tel.Sensing.Rows() != 12 {
		t.Errorf("screen sizes %d/%d, want 8/12", tel.Science.Rows(), tel.Sensing.Rows())
	}
	// first coefficient row is pure piston
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if tel.Science.At(i, j) != 1 {
				t.Fatalf("science(%d,%d) = %f, want 1", i, j, tel.Science.At(i, j))
			}
		}
	}
}

func TestInitializeSinglePath(t *testing.T) {
	p := baseParams()
	p.IncludePath = IncludeScience
	res, err := New(seriesLoader()).Initialize(p, baseGeometry(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.ScienceScreen == nil || res.SensingScreen != nil {
		t.Errorf("science=%v sensing=%v, want science only", res.ScienceScreen != nil, res.SensingScreen != nil)
	}

	p.IncludePath = IncludeSensing
	res, err = New(seriesLoader()).Initialize(p, baseGeometry(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.ScienceScreen != nil || res.SensingScreen == nil {
		t.Errorf("science=%v sensing=%v, want sensing only", res.ScienceScreen != nil, res.SensingScreen != nil)
	}
}

func TestInitializeExplicitDiameter(t *testing.T) {
	// pupil scale 0.8 m/px on the small grid
	tests := []struct {
		dataDiameter float64
		smallSize    int
		marginedSize int
	}{
		{11.2, 10, 12}, // 14 px, larger than margined: two crops
		{9.6, 10, 12},  // 12 px, equal: full cube on the margined path
	}
	for _, tt := range tests {
		p := baseParams()
		p.PupilDiameter = FitToTelescope
		p.DataDiameter = tt.dataDiameter
		g := baseGeometry()
		g.SmallPupil = 10

		res, err := New(seriesLoader()).Initialize(p, g, nil)
		if err != nil {
			t.Fatalf("data diameter %g: %v", tt.dataDiameter, err)
		}
		if res.ResolvedDiameter != 8.0 {
			t.Errorf("resolved diameter %g, want 8", res.ResolvedDiameter)
		}
		if res.SmallCube.Size() != tt.smallSize || res.MarginedCube.Size() != tt.marginedSize {
			t.Errorf("data diameter %g: cube sizes %d/%d, want %d/%d", tt.dataDiameter,
				res.SmallCube.Size(), res.MarginedCube.Size(), tt.smallSize, tt.marginedSize)
		}
	}
}

func TestInitializeDataSmallerThanMarginedPupil(t *testing.T) {
	p := baseParams()
	p.PupilDiameter = FitToTelescope
	p.DataDiameter = 8.5 // 10 px, below the 12 px margined pupil
	g := baseGeometry()
	g.SmallPupil = 10

	_, err := New(seriesLoader()).Initialize(p, g, nil)
	if !errors.Is(err, ErrGeometry) {
		t.Errorf("got %v, want ErrGeometry", err)
	}
}

func TestInitializePupilNotSmallerThanData(t *testing.T) {
	p := baseParams()
	p.PupilDiameter = 9.0
	p.DataDiameter = 9.0

	_, err := New(seriesLoader()).Initialize(p, baseGeometry(), nil)
	if !errors.Is(err, ErrGeometry) {
		t.Errorf("got %v, want ErrGeometry", err)
	}
}

func TestInitializeInvalidSentinel(t *testing.T) {
	p := baseParams()
	p.PupilDiameter = -3.0

	_, err := New(seriesLoader()).Initialize(p, baseGeometry(), nil)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got %v, want ErrInvalidParameter", err)
	}
}

func TestInitializeInvalidIncludePath(t *testing.T) {
	for _, path := range []int{-1, 4, 7} {
		p := baseParams()
		p.IncludePath = path
		_, err := New(seriesLoader()).Initialize(p, baseGeometry(), nil)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("path %d: got %v, want ErrInvalidParameter", path, err)
		}
	}
}

func TestInitializeCoefficientMismatch(t *testing.T) {
	loader := seriesLoader()
	loader.arrays["coeff"] = &matfile.Array{Dims: []int{2, 2}, Data: []float64{1, 0, 0, 1}}

	_, err := New(loader).Initialize(baseParams(), baseGeometry(), nil)
	if !errors.Is(err, screen.ErrDimensionMismatch) {
		t.Errorf("got %v, want screen.ErrDimensionMismatch", err)
	}
}

func TestInitializeTemporalFailure(t *testing.T) {
	loader := seriesLoader()
	loader.arrays["time"] = &matfile.Array{Dims: []int{1, 3}, Data: []float64{0.0, 0.1, 0.25}}

	tel := &Telescope{}
	_, err := New(loader).Initialize(baseParams(), baseGeometry(), tel)
	if !errors.Is(err, temporal.ErrNonUniformSampling) {
		t.Errorf("got %v, want temporal.ErrNonUniformSampling", err)
	}
	if tel.Science != nil || tel.Sensing != nil {
		t.Error("no screens may be written after a validation failure")
	}
}

func TestReport(t *testing.T) {
	p := baseParams()
	res, err := New(seriesLoader()).Initialize(p, baseGeometry(), nil)
	if err != nil {
		t.Fatal(err)
	}

	rep := res.Report(p)
	if !rep.Enabled {
		t.Error("report should be enabled")
	}
	if rep.SourceFile != "series.mat" {
		t.Errorf("source file %q", rep.SourceFile)
	}
	if rep.Diameter != "data fitted to simulation grid" {
		t.Errorf("diameter text %q", rep.Diameter)
	}
	if rep.Inclusion != "science (target) and analytic (WFS) path" {
		t.Errorf("inclusion text %q", rep.Inclusion)
	}
	if rep.Samples != 2 {
		t.Errorf("samples = %d, want 2", rep.Samples)
	}

	p.PupilDiameter = FitToTelescope
	p.DataDiameter = 11.2
	g := baseGeometry()
	g.SmallPupil = 10
	res, err = New(seriesLoader()).Initialize(p, g, nil)
	if err != nil {
		t.Fatal(err)
	}
	if rep := res.Report(p); rep.Diameter != "8 m" {
		t.Errorf("diameter text %q, want \"8 m\"", rep.Diameter)
	}
}
