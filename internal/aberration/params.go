package aberration

// Sentinel values for Params.PupilDiameter.
const (
	// FitToTelescope resolves the assumed pupil diameter to the
	// telescope diameter.
	FitToTelescope = -1.0

	// FitToGrid skips the physical-diameter comparison and generates the
	// basis directly at the margined-pupil pixel size.
	FitToGrid = -2.0
)

// Inclusion paths selecting which optical paths receive a screen.
const (
	IncludeNone    = 0
	IncludeScience = 1
	IncludeSensing = 2
	IncludeBoth    = 3
)

// Params describes one aberration source: where its coefficient series
// lives and how its pupil maps onto the simulation grids.
type Params struct {
	Enabled bool

	// Modes is the number of Noll-ordered basis polynomials, 1..22.
	Modes int

	// PupilDiameter is the assumed physical diameter in meters of the
	// pupil the data is placed over, or one of the sentinels above.
	PupilDiameter float64

	// DataDiameter is the physical diameter in meters covered by the
	// aberration data, as declared by the data source.
	DataDiameter float64

	FileDir       string
	FileName      string
	FormatVersion string
	CoeffVariable string
	TimeVariable  string

	// IncludePath selects the optical paths to inject into, 0..3.
	IncludePath int

	// Tolerance bounds the temporal-grid checks; zero selects
	// temporal.DefaultTolerance.
	Tolerance float64
}

// Geometry carries the simulation-side discretization the aberration
// must be reconciled with.
type Geometry struct {
	// TelescopeDiameter is the telescope pupil diameter in meters.
	TelescopeDiameter float64

	// SmallPupil and MarginedPupil are the pixel diameters of the
	// simulation's minimal and margined pupil grids.
	SmallPupil    int
	MarginedPupil int

	// IterTime is the simulation iteration period in seconds.
	IterTime float64
}
