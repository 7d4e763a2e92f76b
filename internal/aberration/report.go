package aberration

import (
	"fmt"
	"path/filepath"
)

// Report is the structured status summary of one initialization call.
// Rendering is left to the caller.
type Report struct {
	Enabled     bool
	SourceFile  string
	Modes       int
	IncludePath int
	Inclusion   string
	Diameter    string
	Step        float64
	Decimation  int
	Samples     int
}

// Report summarizes the result for status output.
func (r *Result) Report(p Params) Report {
	if !r.Enabled {
		return Report{Enabled: false}
	}
	rep := Report{
		Enabled:     true,
		SourceFile:  filepath.Join(p.FileDir, p.FileName),
		Modes:       p.Modes,
		IncludePath: p.IncludePath,
		Inclusion:   inclusionText(p.IncludePath),
		Step:        r.Step,
		Decimation:  r.Decimation,
	}
	if r.Coeffs != nil {
		rep.Samples = r.Coeffs.Rows()
	}
	if r.AutoFit {
		rep.Diameter = "data fitted to simulation grid"
	} else {
		rep.Diameter = fmt.Sprintf("%g m", r.ResolvedDiameter)
	}
	return rep
}

func inclusionText(path int) string {
	switch path {
	case IncludeScience:
		return "science (target) path"
	case IncludeSensing:
		return "analytic (WFS) path"
	case IncludeBoth:
		return "science (target) and analytic (WFS) path"
	default:
		return "not included"
	}
}
