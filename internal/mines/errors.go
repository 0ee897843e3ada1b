package mines

import "errors"

var (
	// ErrInvalidDimensions is returned when rows or columns fall outside
	// [MinDimension, MaxDimension].
	ErrInvalidDimensions = errors.New("invalid grid dimensions")

	// ErrInvalidMineCount is returned when the mine count is not in
	// [1, rows*columns-1].
	ErrInvalidMineCount = errors.New("invalid mine count")

	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
