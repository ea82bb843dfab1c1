package field

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned when a field cannot be built from the given
	// dimensions and mine count.
	ErrInvalidConfig = errors.New("invalid field configuration")

	// ErrOutOfBounds is matched by the panic value raised when a coordinate
	// outside the grid reaches a query or mutator.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)

// OutOfBoundsError describes a coordinate that does not lie on the grid.
// Fields panic with it; callers are expected to pass only coordinates
// obtained from Contains or a pre-clamped pointer mapping.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: (%d,%d) on %dx%d field", ErrOutOfBounds, e.X, e.Y, e.Width, e.Height)
}

// Unwrap lets errors.Is match ErrOutOfBounds.
func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// Validate checks the construction constraints
// width > 0, height > 0 and 0 < mines < width*height.
func Validate(width, height, mines int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidConfig, width, height)
	}
	if mines <= 0 {
		return fmt.Errorf("%w: mine count must be positive, got %d", ErrInvalidConfig, mines)
	}
	if mines >= width*height {
		return fmt.Errorf("%w: %d mines do not fit a %dx%d field", ErrInvalidConfig, mines, width, height)
	}
	return nil
}
