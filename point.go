package ggplay

import "math"

// Point represents a 2D point.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
