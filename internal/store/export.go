// Package store exports initialization results for external tooling.
package store

import (
	"encoding/json"
	"os"

	"github.com/aosim/zaberration/internal/aberration"
	"github.com/aosim/zaberration/internal/screen"
)

type ExportData struct {
	Source        string      `json:"source"`
	Modes         int         `json:"modes"`
	IncludePath   int         `json:"include_path"`
	Diameter      string      `json:"diameter"`
	Step          float64     `json:"step"`
	Decimation    int         `json:"decimation"`
	Samples       int         `json:"samples"`
	ScienceScreen [][]float32 `json:"science_screen,omitempty"`
	SensingScreen [][]float32 `json:"sensing_screen,omitempty"`
}

// ExportJSON writes the initialization report and phase screens to path.
func ExportJSON(path string, rep aberration.Report, res *aberration.Result) error {
	data := ExportData{
		Source:        rep.SourceFile,
		Modes:         rep.Modes,
		IncludePath:   rep.IncludePath,
		Diameter:      rep.Diameter,
		Step:          rep.Step,
		Decimation:    rep.Decimation,
		Samples:       rep.Samples,
		ScienceScreen: screenRows(res.ScienceScreen),
		SensingScreen: screenRows(res.SensingScreen),
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func screenRows(s *screen.Screen) [][]float32 {
	if s == nil {
		return nil
	}
	rows := make([][]float32, s.Rows())
	for i := range rows {
		row := make([]float32, s.Cols())
		for j := range row {
			row[j] = s.At(i, j)
		}
		rows[i] = row
	}
	return rows
}
