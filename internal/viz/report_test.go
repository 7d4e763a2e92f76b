package viz

import (
	"strings"
	"testing"

	"github.com/aosim/zaberration/internal/aberration"
	"gonum.org/v1/gonum/mat"
)

func TestRenderReportEnabled(t *testing.T) {
	out := RenderReport(aberration.Report{
		Enabled:    true,
		SourceFile: "/data/night1.mat",
		Modes:      22,
		Inclusion:  "science (target) path",
		Diameter:   "8 m",
		Step:       0.1,
		Decimation: 50,
		Samples:    1200,
	})

	for _, want := range []string{"enabled", "/data/night1.mat", "22", "science (target) path", "8 m"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReportDisabled(t *testing.T) {
	out := RenderReport(aberration.Report{Enabled: false})
	if !strings.Contains(out, "disabled") {
		t.Errorf("report missing disabled status:\n%s", out)
	}
	if strings.Contains(out, "source file") {
		t.Errorf("disabled report should not list a source:\n%s", out)
	}
}

func TestHeatmapShape(t *testing.T) {
	m := mat.NewDense(6, 6, nil)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			m.Set(i, j, float64(i*j))
		}
	}
	out := Heatmap(m, 80)
	if got := len(strings.Split(out, "\n")); got != 6 {
		t.Errorf("heatmap has %d lines, want 6", got)
	}
}

func TestCrossSection(t *testing.T) {
	m := mat.NewDense(5, 5, nil)
	m.Set(2, 3, 7)
	cs := CrossSection(m)
	if len(cs) != 5 || cs[3] != 7 {
		t.Errorf("cross section %v", cs)
	}
}
