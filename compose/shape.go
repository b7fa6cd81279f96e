// Package compose models drawable shapes as values satisfying a Shape
// interface.
//
// Rendering and rotation are written once, as functions over Shape, instead
// of once per shape type. Rotation wraps a shape in a Transformed value, so
// it works for every Shape, including other Transformed values, without
// subclassing:
//
//	r := compose.NewRectangle(ggplay.Pt(0, 0), ggplay.Sz(100, 200))
//	img := compose.Image(r.Rotated(math.Pi / 6))
package compose

import (
	"image"

	"github.com/gogpu/ggplay"
)

// Shape is a drawable value.
type Shape interface {
	// Draw fills the shape onto c. Draw leaves the canvas state as it found
	// it apart from the fill color.
	Draw(c ggplay.Canvas)
	// BoundingBox returns an axis-aligned rectangle containing everything
	// Draw paints.
	BoundingBox() ggplay.Rect
	// Rotated returns a new shape rotated by angle radians about the
	// coordinate origin. Implementations that have nothing better to do
	// return Rotate(s, angle).
	Rotated(angle float64) Shape
}

// Image renders s into a bitmap covering its bounding box.
func Image(s Shape, opts ...ggplay.RendererOption) *image.RGBA {
	r := ggplay.NewImageRenderer(s.BoundingBox(), opts...)
	return r.Image(s.Draw)
}

// Rotate is the default Rotated: it wraps s in a Transformed holding a
// rotation about the origin. s itself is not modified.
func Rotate(s Shape, angle float64) Shape {
	return Transform(s, ggplay.Rotate(angle))
}

// RotateAbout wraps s in a rotation about pivot.
func RotateAbout(s Shape, angle float64, pivot ggplay.Point) Shape {
	return Transform(s, ggplay.RotateAbout(angle, pivot))
}

// RotateAboutCenter wraps s in a rotation about the center of its bounding
// box, so the shape turns in place instead of orbiting the origin.
func RotateAboutCenter(s Shape, angle float64) Shape {
	return RotateAbout(s, angle, s.BoundingBox().Center())
}

// Translate wraps s in a translation.
func Translate(s Shape, dx, dy float64) Shape {
	return Transform(s, ggplay.Translate(dx, dy))
}

// Scale wraps s in a scale about the origin.
func Scale(s Shape, sx, sy float64) Shape {
	return Transform(s, ggplay.Scale(sx, sy))
}

// Transform wraps s in an arbitrary affine transform.
func Transform(s Shape, m ggplay.Matrix) Shape {
	return Transformed{Original: s, Transform: m}
}
