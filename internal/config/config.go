package config

import (
	"os"

	"github.com/aosim/zaberration/internal/aberration"
	"gopkg.in/yaml.v3"
)

const (
	DefaultIterTime      = 0.002
	DefaultTelescopeDiam = 8.0
	DefaultPupilPixels   = 500
	DefaultMarginedPix   = 516
	DefaultModes         = 22
	DefaultTolerance     = 1e-12
)

type Config struct {
	Loop       LoopConfig       `yaml:"loop"`
	Telescope  TelescopeConfig  `yaml:"telescope"`
	Geometry   GeometryConfig   `yaml:"geometry"`
	Aberration AberrationConfig `yaml:"aberration"`
}

type LoopConfig struct {
	IterTime float64 `yaml:"iter_time"`
}

type TelescopeConfig struct {
	Diameter float64 `yaml:"diameter"`
}

type GeometryConfig struct {
	PupilPixels    int `yaml:"pupil_pixels"`
	MarginedPixels int `yaml:"margined_pixels"`
}

type AberrationConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Modes         int     `yaml:"modes"`
	PupilDiameter float64 `yaml:"pupil_diameter"`
	DataDiameter  float64 `yaml:"data_diameter"`
	FileDir       string  `yaml:"file_dir"`
	FileName      string  `yaml:"file_name"`
	FormatVersion string  `yaml:"format_version"`
	CoeffVariable string  `yaml:"coeff_variable"`
	TimeVariable  string  `yaml:"time_variable"`
	IncludePath   int     `yaml:"include_path"`
	Tolerance     float64 `yaml:"tolerance"`
}

func DefaultConfig() *Config {
	return &Config{
		Loop:      LoopConfig{IterTime: DefaultIterTime},
		Telescope: TelescopeConfig{Diameter: DefaultTelescopeDiam},
		Geometry: GeometryConfig{
			PupilPixels:    DefaultPupilPixels,
			MarginedPixels: DefaultMarginedPix,
		},
		Aberration: AberrationConfig{
			Enabled:       true,
			Modes:         DefaultModes,
			PupilDiameter: aberration.FitToTelescope,
			DataDiameter:  9.0,
			FormatVersion: "v7",
			CoeffVariable: "coeff",
			TimeVariable:  "time",
			IncludePath:   aberration.IncludeBoth,
			Tolerance:     DefaultTolerance,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AberrationParams maps the aberration section onto initializer params.
func (c *Config) AberrationParams() aberration.Params {
	a := c.Aberration
	return aberration.Params{
		Enabled:       a.Enabled,
		Modes:         a.Modes,
		PupilDiameter: a.PupilDiameter,
		DataDiameter:  a.DataDiameter,
		FileDir:       a.FileDir,
		FileName:      a.FileName,
		FormatVersion: a.FormatVersion,
		CoeffVariable: a.CoeffVariable,
		TimeVariable:  a.TimeVariable,
		IncludePath:   a.IncludePath,
		Tolerance:     a.Tolerance,
	}
}

// PupilGeometry maps the loop/telescope/geometry sections onto the
// simulation-side discretization.
func (c *Config) PupilGeometry() aberration.Geometry {
	return aberration.Geometry{
		TelescopeDiameter: c.Telescope.Diameter,
		SmallPupil:        c.Geometry.PupilPixels,
		MarginedPupil:     c.Geometry.MarginedPixels,
		IterTime:          c.Loop.IterTime,
	}
}
