package grid

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is matched by every error returned when a shape's bounding
// box would leave the grid.
var ErrOutOfBounds = errors.New("out of bounds")

// BoundsError reports the shape and anchor that failed the bounds check.
type BoundsError struct {
	Shape  Shape
	Anchor Cell
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("shape %s at %s: %v", e.Shape, e.Anchor, ErrOutOfBounds)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
