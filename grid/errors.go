package grid

import "errors"

var (
	// ErrEmptyGrid indicates a non-positive width or height.
	ErrEmptyGrid = errors.New("grid: width and height must both be positive")

	// ErrIncompatibleShift indicates a polygon/orientation/shift
	// combination outside the compatibility matrix.
	ErrIncompatibleShift = errors.New("grid: shift mode is not compatible with this polygon and orientation")

	// ErrInvalidCircumradius indicates a non-positive circumradius.
	ErrInvalidCircumradius = errors.New("grid: circumradius must be positive")

	// ErrCellOutOfBounds indicates a cell coordinate outside [0,width) x [0,height).
	ErrCellOutOfBounds = errors.New("grid: cell coordinate out of bounds")

	// ErrReadOnlyView indicates a mutating call was made through a View.
	ErrReadOnlyView = errors.New("grid: view is read-only")
)
