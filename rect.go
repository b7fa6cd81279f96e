package ggplay

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle given by its origin and size.
// A rect with negative width or height is valid; Standardize returns the
// equivalent rect with non-negative size.
type Rect struct {
	X, Y float64
	W, H float64
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFrom creates a rect from an origin and a size.
func RectFrom(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, W: size.Width, H: size.Height}
}

// Origin returns the origin corner of the rect.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the size of the rect.
func (r Rect) Size() Size { return Size{Width: r.W, Height: r.H} }

// Min returns the corner with the smallest coordinates.
func (r Rect) Min() Point {
	s := r.Standardize()
	return Point{X: s.X, Y: s.Y}
}

// Max returns the corner with the largest coordinates.
func (r Rect) Max() Point {
	s := r.Standardize()
	return Point{X: s.X + s.W, Y: s.Y + s.H}
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Area returns the (non-negative) area.
func (r Rect) Area() float64 {
	return math.Abs(r.W * r.H)
}

// IsEmpty reports whether the rect covers no area.
func (r Rect) IsEmpty() bool {
	return r.W == 0 || r.H == 0
}

// IsFinite reports whether every field is a finite number.
func (r Rect) IsFinite() bool {
	return isFinite(r.X) && isFinite(r.Y) && isFinite(r.W) && isFinite(r.H)
}

// Standardize returns the rect with its origin moved so that width and height
// are non-negative.
func (r Rect) Standardize() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Apply returns the smallest axis-aligned rect containing the four corners
// of r mapped through m.
func (r Rect) Apply(m Matrix) Rect {
	if m.IsIdentity() {
		return r.Standardize()
	}
	lo, hi := r.Min(), r.Max()
	corners := [4]Point{
		m.TransformPoint(lo),
		m.TransformPoint(Pt(hi.X, lo.Y)),
		m.TransformPoint(hi),
		m.TransformPoint(Pt(lo.X, hi.Y)),
	}
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// ApproxEqual reports whether each field of r is within eps of s.
func (r Rect) ApproxEqual(s Rect, eps float64) bool {
	return approx(r.X, s.X, eps) && approx(r.Y, s.Y, eps) &&
		approx(r.W, s.W, eps) && approx(r.H, s.H, eps)
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g, %g, %g, %g)", r.X, r.Y, r.W, r.H)
}
