package geom

import "image"

// CenterOf returns the center point of the bounding area at (x, y) with the
// given width and height. Integer division, so the center of an odd-sized
// area rounds towards the origin.
func CenterOf(x int, y int, width int, height int) image.Point {
	return image.Pt(x+width/2, y+height/2)
}

// Center returns the center point of the rectangle.
func Center(bounds image.Rectangle) image.Point {
	return CenterOf(bounds.Min.X, bounds.Min.Y, bounds.Dx(), bounds.Dy())
}
