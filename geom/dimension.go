package geom

import "fmt"

// Dimension is an immutable width and height pair. Values are created with
// DimensionOf and never change afterwards; there are no mutators. Two
// dimensions are equal when both components are exactly equal, so values can
// be compared with ==.
type Dimension struct {
	width  float64
	height float64
}

// ZeroDimension is the shared 0x0 dimension. Equality is still by value, so
// any 0x0 dimension compares equal to it.
var ZeroDimension = Dimension{}

func DimensionOf(width float64, height float64) Dimension {
	if width == 0 && height == 0 {
		return ZeroDimension
	}
	return Dimension{width: width, height: height}
}

func (s Dimension) Width() float64 {
	return s.width
}

func (s Dimension) Height() float64 {
	return s.height
}

func (s Dimension) IsZero() bool {
	return s.width == 0 && s.height == 0
}

func (s Dimension) String() string {
	return fmt.Sprintf("{width:%v,height:%v}", s.width, s.height)
}
