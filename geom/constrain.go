package geom

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a dimension to constrain is not
// strictly positive or when a constraining bound is negative.
var ErrInvalidArgument = errors.New("invalid argument")

// ConstrainedBy scales the dimension down so that no part lies outside the
// constraining width and height, preserving the aspect ratio. A dimension
// that already fits is returned unchanged. A zero bound in either direction
// collapses the result to ZeroDimension.
func (s Dimension) ConstrainedBy(maxWidth float64, maxHeight float64) (Dimension, error) {
	if s.width <= 0 || s.height <= 0 {
		return ZeroDimension, fmt.Errorf("%w: cannot constrain a non-positive dimension", ErrInvalidArgument)
	}
	if maxWidth < 0 || maxHeight < 0 {
		return ZeroDimension, fmt.Errorf("%w: constraining width and height must be non-negative", ErrInvalidArgument)
	}
	if maxWidth == 0 || maxHeight == 0 {
		return ZeroDimension, nil
	}
	if s.width <= maxWidth && s.height <= maxHeight {
		return s, nil
	}

	ratio := s.width / s.height
	constrainingRatio := maxWidth / maxHeight
	if constrainingRatio < ratio {
		// Width is the binding constraint
		return DimensionOf(maxWidth, maxWidth/ratio), nil
	}
	if constrainingRatio > ratio {
		// Height is the binding constraint
		return DimensionOf(maxHeight*ratio, maxHeight), nil
	}
	// Same ratio: the bounds themselves are the result
	return DimensionOf(maxWidth, maxHeight), nil
}

// ConstrainedByDimension delegates to ConstrainedBy with the components of
// the given constraining dimension.
func (s Dimension) ConstrainedByDimension(max Dimension) (Dimension, error) {
	return s.ConstrainedBy(max.width, max.height)
}
