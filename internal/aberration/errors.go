package aberration

import "errors"

var (
	// ErrGeometry indicates pupil and data diameters that cannot be
	// reconciled on the simulation grids.
	ErrGeometry = errors.New("aberration: inconsistent pupil and data geometry")

	// ErrInvalidParameter indicates a flag or sentinel outside its domain.
	ErrInvalidParameter = errors.New("aberration: parameter outside its valid domain")
)
